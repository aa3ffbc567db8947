package entities

import (
	"errors"
	"testing"
)

func TestValidateTaxID(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		err  error
	}{
		{name: "formatted cpf", in: "529.982.247-25", want: "52998224725"},
		{name: "formatted cnpj", in: "11.222.333/0001-81", want: "11222333000181"},
		{name: "bad cpf digit", in: "529.982.247-26", err: ErrTaxIDChecksum},
		{name: "bad cnpj digit", in: "11.222.333/0001-82", err: ErrTaxIDChecksum},
		{name: "repeated digits", in: "111.111.111-11", err: ErrTaxIDChecksum},
		{name: "wrong length", in: "12345", err: ErrTaxIDLength},
		{name: "empty", in: "", err: ErrTaxIDLength},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateTaxID(tc.in)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestClient_IsOrganization(t *testing.T) {
	if !(Client{TaxID: "11222333000181"}).IsOrganization() {
		t.Fatalf("expected organization for cnpj")
	}
	if (Client{TaxID: "52998224725"}).IsOrganization() {
		t.Fatalf("expected individual for cpf")
	}
}

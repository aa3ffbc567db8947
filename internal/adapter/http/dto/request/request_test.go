package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseDate(t *testing.T) {
	cases := map[string]time.Time{
		"2025-03-14":                time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		"2025-03-14T08:30":          time.Date(2025, 3, 14, 8, 30, 0, 0, time.UTC),
		"2025-03-14T08:30:15":       time.Date(2025, 3, 14, 8, 30, 15, 0, time.UTC),
		" 2025-03-14T08:30:15Z ":    time.Date(2025, 3, 14, 8, 30, 15, 0, time.UTC),
		"2025-03-14T08:30:15-03:00": time.Date(2025, 3, 14, 11, 30, 15, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := ParseDate(in)
		if err != nil {
			t.Fatalf("ParseDate(%q): unexpected error %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", in, got, want)
		}
	}

	for _, in := range []string{"", "14/03/2025", "tomorrow"} {
		if _, err := ParseDate(in); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("ParseDate(%q): expected ErrInvalidDate, got %v", in, err)
		}
	}
}

func TestParseDate_Location(t *testing.T) {
	brt := time.FixedZone("BRT", -3*60*60)
	SetLocation(brt)
	t.Cleanup(func() { SetLocation(nil) })

	cases := map[string]time.Time{
		"2026-10-01":                time.Date(2026, 10, 1, 3, 0, 0, 0, time.UTC),
		"2026-10-17T20:00":          time.Date(2026, 10, 17, 23, 0, 0, 0, time.UTC),
		"2026-10-17T20:00:00Z":      time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC),
		"2026-10-17T20:00:00+02:00": time.Date(2026, 10, 17, 18, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := ParseDate(in)
		if err != nil {
			t.Fatalf("ParseDate(%q): unexpected error %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFreightRequest_ToInput(t *testing.T) {
	r := FreightRequest{
		ClientID:     " c-1 ",
		Origin:       "Campinas - SP",
		Destination:  "Curitiba - PR",
		PickupDate:   "2025-03-14",
		DeliveryDate: "2025-03-16T18:00",
		ClientAmount: decimal.NewFromInt(2500),
		Status:       " RECRUITING ",
	}
	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.ClientID != "c-1" || in.Status != "RECRUITING" {
		t.Fatalf("fields not trimmed: %+v", in)
	}
	if in.DeliveryDate.Hour() != 18 || !in.ClientAmount.Equal(decimal.NewFromInt(2500)) {
		t.Fatalf("unexpected input: %+v", in)
	}

	r.PickupDate = "soon"
	if _, err := r.ToInput(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestEmitBoletoRequest_ToInput(t *testing.T) {
	in, err := EmitBoletoRequest{}.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !in.DueDate.IsZero() || !in.Value.IsZero() {
		t.Fatalf("expected zero defaults, got %+v", in)
	}

	in, err = EmitBoletoRequest{Value: decimal.NewFromInt(10), DueDate: "2025-03-20"}.ToInput()
	if err != nil || in.DueDate.Day() != 20 {
		t.Fatalf("unexpected input: %+v %v", in, err)
	}

	if _, err := (EmitBoletoRequest{DueDate: "20/03"}).ToInput(); err == nil {
		t.Fatalf("expected error for malformed due date")
	}
}

func TestTransactionPatchRequest_ToPatch(t *testing.T) {
	status := "PAID"
	date := "2025-03-01"
	patch, err := TransactionPatchRequest{Status: &status, Date: &date}.ToPatch()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patch.Status == nil || *patch.Status != "PAID" || patch.Date == nil || patch.Date.Month() != time.March {
		t.Fatalf("unexpected patch: %+v", patch)
	}
	if patch.Amount != nil || patch.Category != nil {
		t.Fatalf("absent fields must stay nil: %+v", patch)
	}

	bad := "yesterday"
	if _, err := (TransactionPatchRequest{Date: &bad}).ToPatch(); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestClientRequest_ToInput(t *testing.T) {
	in := ClientRequest{Name: "Alfa", TaxID: "11.222.333/0001-81", Address: AddressRequest{City: "Santos", State: "sp"}}.ToInput()
	if in.TaxID != "11.222.333/0001-81" || in.Address.City != "Santos" || in.Address.State != "sp" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestWebhookRequest_PaymentID(t *testing.T) {
	cases := map[string]PaymentID{
		`{"event":"PAYMENT_RECEIVED","payment":{"id":"pay_1"}}`:        "pay_1",
		`{"event":"PAYMENT_RECEIVED","payment":{"id":1311772470}}`:     "1311772470",
		`{"event":"PAYMENT_RECEIVED","payment":{"id":98765432101234}}`: "98765432101234",
		`{"event":"PAYMENT_RECEIVED","payment":{"id":null}}`:           "",
	}
	for in, want := range cases {
		var r WebhookRequest
		if err := json.Unmarshal([]byte(in), &r); err != nil {
			t.Fatalf("%s: unexpected error %v", in, err)
		}
		if r.Payment.ID != want {
			t.Fatalf("%s: got %q, want %q", in, r.Payment.ID, want)
		}
	}

	var r WebhookRequest
	if err := json.Unmarshal([]byte(`{"payment":{"id":true}}`), &r); err == nil {
		t.Fatalf("expected error for boolean id")
	}
}

package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	appconfig "eagles_transportes/internal/config"
	"eagles_transportes/internal/domain/entities"
	"eagles_transportes/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway(appconfig.PaymentsConfig{})
	if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g, err := NewMercadoPagoGateway(appconfig.PaymentsConfig{Mock: true})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx := context.Background()

	cus, err := g.FindOrCreateCustomer(ctx, entities.Client{ID: "cli-1", TaxID: "11222333000181"})
	if err != nil || cus == "" {
		t.Fatalf("unexpected customer %q err=%v", cus, err)
	}

	boleto, err := g.CreateBoleto(ctx, interfaces.BoletoRequest{CustomerID: cus, Amount: decimal.NewFromInt(100), DueDate: time.Now()})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if boleto.ExternalID == "" || boleto.SlipURL == "" {
		t.Fatalf("unexpected boleto: %+v", boleto)
	}

	status, err := g.GetPaymentStatus(ctx, boleto.ExternalID)
	if err != nil || status != interfaces.ExternalStatusPending {
		t.Fatalf("expected PENDING, got %q err=%v", status, err)
	}

	g.MockSetStatus(boleto.ExternalID, interfaces.ExternalStatusReceived)
	status, _ = g.GetPaymentStatus(ctx, boleto.ExternalID)
	if status != interfaces.ExternalStatusReceived {
		t.Fatalf("expected RECEIVED, got %q", status)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, err := g.CreateBoleto(context.Background(), interfaces.BoletoRequest{}); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
	if _, err := g.GetPaymentStatus(context.Background(), "1"); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}

func TestNormalizeStatus(t *testing.T) {
	now := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		status     string
		expiration time.Time
		want       string
	}{
		{"approved", time.Time{}, interfaces.ExternalStatusReceived},
		{"authorized", time.Time{}, interfaces.ExternalStatusConfirmed},
		{"refunded", time.Time{}, interfaces.ExternalStatusRefunded},
		{"charged_back", time.Time{}, interfaces.ExternalStatusRefunded},
		{"cancelled", past, interfaces.ExternalStatusRefunded},
		{"pending", past, interfaces.ExternalStatusOverdue},
		{"pending", future, interfaces.ExternalStatusPending},
		{"in_process", time.Time{}, interfaces.ExternalStatusPending},
	}
	for _, tc := range cases {
		if got := normalizeStatus(tc.status, tc.expiration, now); got != tc.want {
			t.Fatalf("normalizeStatus(%q, %v) = %q, want %q", tc.status, tc.expiration, got, tc.want)
		}
	}
}

func TestBoletoPayload(t *testing.T) {
	due := time.Date(2025, time.March, 20, 9, 30, 0, 0, time.UTC)
	p := boletoPayload(interfaces.BoletoRequest{
		Payer: entities.Client{
			Name:    "Transportadora Águia Ltda",
			Email:   "fin@aguia.com.br",
			TaxID:   "11222333000181",
			Address: entities.Address{PostalCode: "01310100", City: "São Paulo", State: "SP"},
		},
		Amount:            decimal.RequireFromString("1500.456"),
		DueDate:           due,
		ExternalReference: "fr-1",
	})

	if p["payment_method_id"] != boletoPaymentMethod || p["external_reference"] != "fr-1" {
		t.Fatalf("unexpected payload: %+v", p)
	}
	if p["transaction_amount"] != 1500.46 {
		t.Fatalf("unexpected amount: %v", p["transaction_amount"])
	}
	if p["date_of_expiration"] != "2025-03-20T23:59:59.000+00:00" {
		t.Fatalf("unexpected expiration: %v", p["date_of_expiration"])
	}
	payer := p["payer"].(map[string]any)
	if payer["first_name"] != "Transportadora" || payer["last_name"] != "Águia Ltda" {
		t.Fatalf("unexpected payer names: %+v", payer)
	}
	id := payer["identification"].(map[string]any)
	if id["type"] != "CNPJ" {
		t.Fatalf("expected CNPJ identification, got %v", id["type"])
	}
	if _, ok := payer["address"]; !ok {
		t.Fatalf("expected payer address")
	}
	if parseExpiration(p["date_of_expiration"].(string)).IsZero() {
		t.Fatalf("expected expiration to parse back")
	}
}

package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	appconfig "eagles_transportes/internal/config"
	"eagles_transportes/internal/domain/entities"
	"eagles_transportes/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/customer"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidExternalID = errors.New("invalid mercado pago payment id")

const (
	boletoPaymentMethod = "bolbradesco"
	expirationLayout    = "2006-01-02T15:04:05.000-07:00"
)

// MercadoPagoGateway issues boletos through Mercado Pago.
//
// In mock mode no HTTP call is made: customers and boletos are kept in memory
// and every boleto stays PENDING until MockSetStatus changes it.
type MercadoPagoGateway struct {
	payments  payment.Client
	customers customer.Client
	mockMode  bool

	mu         sync.Mutex
	mockStatus map[string]string
	now        func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg appconfig.PaymentsConfig) (*MercadoPagoGateway, error) {
	if cfg.Mock {
		log.Printf("[billing][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, mockStatus: map[string]string{}, now: time.Now}, nil
	}

	if cfg.AccessToken == "" {
		log.Printf("[billing][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		log.Printf("[billing][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[billing][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		payments:  payment.NewClient(sdkCfg),
		customers: customer.NewClient(sdkCfg),
		now:       time.Now,
	}, nil
}

// FindOrCreateCustomer looks the client up by email and registers it when absent.
func (g *MercadoPagoGateway) FindOrCreateCustomer(ctx context.Context, client entities.Client) (string, error) {
	if g != nil && g.mockMode {
		id := "mock-cus-" + client.TaxID
		log.Printf("[billing][gateway] mock customer client_id=%s customer_id=%s", client.ID, id)
		return id, nil
	}
	if g == nil || g.customers == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	email := strings.TrimSpace(client.Email)
	if email != "" {
		found, err := g.customers.Search(ctx, customer.SearchRequest{Filters: map[string]string{"email": email}})
		if err != nil {
			log.Printf("[billing][gateway] customer search failed client_id=%s err=%v", client.ID, err)
			return "", err
		}
		var page struct {
			Results []struct {
				ID string `json:"id"`
			} `json:"results"`
		}
		if err := roundTrip(found, &page); err != nil {
			return "", err
		}
		if len(page.Results) > 0 && page.Results[0].ID != "" {
			log.Printf("[billing][gateway] customer found client_id=%s customer_id=%s", client.ID, page.Results[0].ID)
			return page.Results[0].ID, nil
		}
	}

	var req customer.Request
	if err := roundTrip(customerPayload(client), &req); err != nil {
		return "", err
	}
	created, err := g.customers.Create(ctx, req)
	if err != nil {
		log.Printf("[billing][gateway] customer create failed client_id=%s err=%v", client.ID, err)
		return "", err
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := roundTrip(created, &out); err != nil {
		return "", err
	}
	log.Printf("[billing][gateway] customer created client_id=%s customer_id=%s", client.ID, out.ID)
	return out.ID, nil
}

func (g *MercadoPagoGateway) CreateBoleto(ctx context.Context, req interfaces.BoletoRequest) (interfaces.Boleto, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(g.now().UTC().UnixNano(), 10)
		g.mu.Lock()
		g.mockStatus[id] = interfaces.ExternalStatusPending
		g.mu.Unlock()
		log.Printf("[billing][gateway] mock boleto created boleto_id=%s amount=%s", id, req.Amount.String())
		return interfaces.Boleto{ExternalID: id, SlipURL: "https://mock.mercadopago.local/boleto/" + id}, nil
	}
	if g == nil || g.payments == nil {
		return interfaces.Boleto{}, ErrMercadoPagoGatewayNotConfigured
	}

	payload := boletoPayload(req)
	var sdkReq payment.Request
	if err := roundTrip(payload, &sdkReq); err != nil {
		log.Printf("[billing][gateway] payload unmarshal failed err=%v", err)
		return interfaces.Boleto{}, err
	}

	resp, err := g.payments.Create(ctx, sdkReq)
	if err != nil {
		log.Printf("[billing][gateway] sdk create failed reference=%s err=%v", req.ExternalReference, err)
		return interfaces.Boleto{}, err
	}

	var details struct {
		TransactionDetails struct {
			ExternalResourceURL string `json:"external_resource_url"`
		} `json:"transaction_details"`
	}
	if err := roundTrip(resp, &details); err != nil {
		return interfaces.Boleto{}, err
	}
	log.Printf("[billing][gateway] boleto created boleto_id=%d status=%s", resp.ID, resp.Status)
	return interfaces.Boleto{
		ExternalID: fmt.Sprintf("%d", resp.ID),
		SlipURL:    details.TransactionDetails.ExternalResourceURL,
	}, nil
}

func (g *MercadoPagoGateway) GetPaymentStatus(ctx context.Context, externalID string) (string, error) {
	if g != nil && g.mockMode {
		g.mu.Lock()
		defer g.mu.Unlock()
		if s, ok := g.mockStatus[externalID]; ok {
			return s, nil
		}
		return interfaces.ExternalStatusPending, nil
	}
	if g == nil || g.payments == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(externalID))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidExternalID, externalID)
	}
	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Printf("[billing][gateway] sdk get failed boleto_id=%s err=%v", externalID, err)
		return "", err
	}

	var body struct {
		Status           string `json:"status"`
		DateOfExpiration string `json:"date_of_expiration"`
	}
	if err := roundTrip(resp, &body); err != nil {
		return "", err
	}
	return normalizeStatus(body.Status, parseExpiration(body.DateOfExpiration), g.now()), nil
}

// MockSetStatus changes the status reported for a mock boleto.
func (g *MercadoPagoGateway) MockSetStatus(externalID, status string) {
	if g == nil || !g.mockMode {
		return
	}
	g.mu.Lock()
	g.mockStatus[externalID] = status
	g.mu.Unlock()
}

// normalizeStatus maps Mercado Pago payment statuses to interfaces.ExternalStatus*.
// A pending boleto past its expiration is reported as overdue.
func normalizeStatus(mpStatus string, expiration time.Time, now time.Time) string {
	switch strings.ToLower(strings.TrimSpace(mpStatus)) {
	case "approved":
		return interfaces.ExternalStatusReceived
	case "authorized":
		return interfaces.ExternalStatusConfirmed
	case "refunded", "charged_back", "cancelled":
		return interfaces.ExternalStatusRefunded
	}
	if !expiration.IsZero() && now.After(expiration) {
		return interfaces.ExternalStatusOverdue
	}
	return interfaces.ExternalStatusPending
}

func parseExpiration(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{expirationLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

func boletoPayload(req interfaces.BoletoRequest) map[string]any {
	amount, _ := req.Amount.Round(2).Float64()
	due := time.Date(req.DueDate.Year(), req.DueDate.Month(), req.DueDate.Day(), 23, 59, 59, 0, req.DueDate.Location())
	return map[string]any{
		"transaction_amount": amount,
		"description":        req.Description,
		"external_reference": req.ExternalReference,
		"payment_method_id":  boletoPaymentMethod,
		"date_of_expiration": due.Format(expirationLayout),
		"payer":              payerPayload(req.Payer),
	}
}

func payerPayload(c entities.Client) map[string]any {
	first, last := splitName(c.Name)
	payer := map[string]any{
		"email":      c.Email,
		"first_name": first,
		"last_name":  last,
		"identification": map[string]any{
			"type":   identificationType(c),
			"number": c.TaxID,
		},
	}
	if c.Address.PostalCode != "" {
		payer["address"] = map[string]any{
			"zip_code":      c.Address.PostalCode,
			"street_name":   c.Address.Street,
			"street_number": c.Address.Number,
			"neighborhood":  c.Address.Neighborhood,
			"city":          c.Address.City,
			"federal_unit":  c.Address.State,
		}
	}
	return payer
}

func customerPayload(c entities.Client) map[string]any {
	first, last := splitName(c.Name)
	return map[string]any{
		"email":      c.Email,
		"first_name": first,
		"last_name":  last,
		"identification": map[string]any{
			"type":   identificationType(c),
			"number": c.TaxID,
		},
		"description": c.ID,
	}
}

func identificationType(c entities.Client) string {
	if c.IsOrganization() {
		return "CNPJ"
	}
	return "CPF"
}

func splitName(name string) (string, string) {
	name = strings.TrimSpace(name)
	i := strings.Index(name, " ")
	if i < 0 {
		return name, name
	}
	return name[:i], strings.TrimSpace(name[i+1:])
}

// roundTrip converts between our payloads and SDK types through their JSON form,
// so only the wire field names matter.
func roundTrip(in any, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"eagles_transportes/internal/domain/entities"
	"eagles_transportes/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultGatewayTimeout = 15 * time.Second
	defaultBoletoDueDays  = 3
)

// Webhook events sent by the payment provider.
const (
	EventPaymentReceived  = "PAYMENT_RECEIVED"
	EventPaymentConfirmed = "PAYMENT_CONFIRMED"
	EventPaymentOverdue   = "PAYMENT_OVERDUE"
	EventPaymentRefunded  = "PAYMENT_REFUNDED"
)

// EmitInput describes the boleto to issue for a delivered freight.
// A zero Value falls back to the freight's client amount; a zero DueDate to
// three days from now.
type EmitInput struct {
	Value       decimal.Decimal
	DueDate     time.Time
	Description string
}

// IBillingUseCase issues boletos and reconciles their payment status.
//
// Emission is recorded as a BillingIntent before the gateway is called, so a
// boleto that exists at the provider but failed to commit locally can still be
// found through ListUnreconciledIntents.

type IBillingUseCase interface {
	Emit(ctx context.Context, freightID string, in EmitInput) (entities.Freight, error)
	HandleWebhook(ctx context.Context, event, paymentID string) (bool, error)
	Sync(ctx context.Context) (int, error)
	ListPending(ctx context.Context) ([]entities.Freight, error)
	ListIssued(ctx context.Context) ([]entities.Freight, error)
	ListUnreconciledIntents(ctx context.Context) ([]entities.BillingIntent, error)
}

type BillingUseCase struct {
	freightRepo interfaces.IFreightRepository
	clientRepo  interfaces.IClientRepository
	txRepo      interfaces.ITransactionRepository
	intentRepo  interfaces.IBillingIntentRepository
	gateway     interfaces.IPaymentGateway
	timeout     time.Duration
	now         func() time.Time
}

var _ IBillingUseCase = (*BillingUseCase)(nil)

func NewBillingUseCase(
	freightRepo interfaces.IFreightRepository,
	clientRepo interfaces.IClientRepository,
	txRepo interfaces.ITransactionRepository,
	intentRepo interfaces.IBillingIntentRepository,
	gateway interfaces.IPaymentGateway,
	timeout time.Duration,
) *BillingUseCase {
	if timeout <= 0 {
		timeout = defaultGatewayTimeout
	}
	return &BillingUseCase{
		freightRepo: freightRepo,
		clientRepo:  clientRepo,
		txRepo:      txRepo,
		intentRepo:  intentRepo,
		gateway:     gateway,
		timeout:     timeout,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *BillingUseCase) Emit(ctx context.Context, freightID string, in EmitInput) (entities.Freight, error) {
	freightID = strings.TrimSpace(freightID)
	log.Printf("[billing][usecase] emit start freight_id=%s value=%s", freightID, in.Value.String())
	if freightID == "" {
		return entities.Freight{}, ErrInvalidFreightID
	}

	f, err := u.freightRepo.GetByID(ctx, freightID)
	if err != nil {
		log.Printf("[billing][usecase] failed loading freight freight_id=%s err=%v", freightID, err)
		return entities.Freight{}, err
	}
	if f.ID == "" {
		return entities.Freight{}, ErrFreightNotFound
	}
	if f.BillingStatus == entities.BillingStatusIssued || f.BillingStatus == entities.BillingStatusPaid {
		log.Printf("[billing][usecase] boleto already issued freight_id=%s billing_status=%s boleto_id=%s", f.ID, f.BillingStatus, f.BoletoID)
		return entities.Freight{}, ErrBoletoAlreadyIssued
	}
	if f.Status != entities.FreightStatusDelivered {
		return entities.Freight{}, ErrFreightNotDelivered
	}
	if f.ClientID == "" {
		return entities.Freight{}, ErrBillingWithoutClient
	}
	client, err := u.clientRepo.GetByID(ctx, f.ClientID)
	if err != nil {
		return entities.Freight{}, err
	}
	if client.ID == "" {
		log.Printf("[billing][usecase] client not resolvable freight_id=%s client_id=%s", f.ID, f.ClientID)
		return entities.Freight{}, ErrBillingWithoutClient
	}

	now := u.now()
	value := in.Value
	if value.IsZero() {
		value = f.ClientAmount
	}
	value = value.Round(2)
	if !value.IsPositive() {
		return entities.Freight{}, ErrInvalidBillingValue
	}
	dueDate := in.DueDate
	if dueDate.IsZero() {
		dueDate = now.AddDate(0, 0, defaultBoletoDueDays)
	}
	if dueDate.Before(startOfDay(now)) {
		return entities.Freight{}, ErrInvalidDueDate
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		description = fmt.Sprintf("Frete %s -> %s", f.Origin, f.Destination)
	}
	if u.gateway == nil {
		return entities.Freight{}, ErrPaymentGatewayMissing
	}

	intent, err := u.intentRepo.Create(ctx, entities.BillingIntent{
		ID:        uuid.NewString(),
		FreightID: f.ID,
		Amount:    value,
		DueDate:   dueDate,
		State:     entities.BillingIntentPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		log.Printf("[billing][usecase] intent create failed freight_id=%s err=%v", f.ID, err)
		return entities.Freight{}, err
	}

	boleto, err := u.issueBoleto(ctx, client, interfaces.BoletoRequest{
		Payer:             client,
		Amount:            value,
		DueDate:           dueDate,
		Description:       description,
		ExternalReference: f.ID,
	})
	if err != nil {
		log.Printf("[billing][usecase] payment gateway failed freight_id=%s intent_id=%s err=%v", f.ID, intent.ID, err)
		intent.State = entities.BillingIntentFailed
		intent.Error = err.Error()
		u.updateIntent(ctx, intent)
		return entities.Freight{}, externalServiceError("emit boleto", err)
	}
	log.Printf("[billing][usecase] payment gateway success freight_id=%s boleto_id=%s", f.ID, boleto.ExternalID)

	intent.State = entities.BillingIntentExternalCreated
	intent.ExternalID = boleto.ExternalID
	intent.BoletoURL = boleto.SlipURL
	u.updateIntent(ctx, intent)

	f.BillingStatus = entities.BillingStatusIssued
	f.BoletoID = boleto.ExternalID
	f.BoletoURL = boleto.SlipURL
	f.BoletoDueDate = &dueDate
	f.UpdatedAt = now
	updated, err := u.freightRepo.Update(ctx, f)
	if err == nil && updated.ID == "" {
		err = ErrFreightNotFound
	}
	if err != nil {
		return entities.Freight{}, u.inconsistent(f.ID, intent, err)
	}

	_, err = u.txRepo.Create(ctx, entities.FinancialTransaction{
		ID:               uuid.NewString(),
		Type:             entities.TransactionTypeIncome,
		Category:         entities.TransactionCategoryFreight,
		Description:      description,
		Amount:           value,
		Date:             dueDate,
		Status:           entities.TransactionStatusPending,
		RelatedFreightID: f.ID,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		return entities.Freight{}, u.inconsistent(f.ID, intent, err)
	}

	intent.State = entities.BillingIntentCommitted
	u.updateIntent(ctx, intent)
	log.Printf("[billing][usecase] emit success freight_id=%s boleto_id=%s due=%s", updated.ID, updated.BoletoID, dueDate.Format("2006-01-02"))
	return updated, nil
}

func (u *BillingUseCase) issueBoleto(ctx context.Context, client entities.Client, req interfaces.BoletoRequest) (interfaces.Boleto, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	customerID, err := u.gateway.FindOrCreateCustomer(ctx, client)
	if err != nil {
		return interfaces.Boleto{}, err
	}
	req.CustomerID = customerID
	return u.gateway.CreateBoleto(ctx, req)
}

func (u *BillingUseCase) inconsistent(freightID string, intent entities.BillingIntent, cause error) error {
	log.Printf("[billing][usecase] local commit failed after boleto creation freight_id=%s intent_id=%s boleto_id=%s err=%v",
		freightID, intent.ID, intent.ExternalID, cause)
	return &InconsistentStateError{
		FreightID:  freightID,
		IntentID:   intent.ID,
		ExternalID: intent.ExternalID,
		Cause:      cause,
	}
}

// updateIntent is best effort: the intent only tracks progress and a failed
// write must not hide the outcome of the emission itself.
func (u *BillingUseCase) updateIntent(ctx context.Context, intent entities.BillingIntent) {
	intent.UpdatedAt = u.now()
	if _, err := u.intentRepo.Update(ctx, intent); err != nil {
		log.Printf("[billing][usecase] intent update failed intent_id=%s state=%s err=%v", intent.ID, intent.State, err)
	}
}

// HandleWebhook applies a provider notification. It reports whether a freight
// was updated; unknown events and unknown payments are ignored.
func (u *BillingUseCase) HandleWebhook(ctx context.Context, event, paymentID string) (bool, error) {
	event = strings.ToUpper(strings.TrimSpace(event))
	paymentID = strings.TrimSpace(paymentID)
	log.Printf("[billing][usecase] webhook event=%s payment_id=%s", event, paymentID)

	status, ok := webhookBillingStatus(event)
	if !ok {
		log.Printf("[billing][usecase] webhook ignored event=%s", event)
		return false, nil
	}
	if paymentID == "" {
		return false, ErrInvalidPaymentID
	}

	found, err := u.freightRepo.Find(ctx, entities.FreightQuery{BoletoID: paymentID, Limit: 1})
	if err != nil {
		return false, err
	}
	if len(found) == 0 {
		log.Printf("[billing][usecase] webhook for unknown boleto payment_id=%s", paymentID)
		return false, nil
	}
	if err := u.setBillingStatus(ctx, found[0], status); err != nil {
		return false, err
	}
	return true, nil
}

// Sync polls the gateway for every freight with an open boleto and returns how
// many changed. Gateway failures for one freight do not stop the others.
func (u *BillingUseCase) Sync(ctx context.Context) (int, error) {
	if u.gateway == nil {
		return 0, ErrPaymentGatewayMissing
	}
	open, err := u.freightRepo.Find(ctx, entities.FreightQuery{
		BillingStatuses: []entities.BillingStatus{
			entities.BillingStatusIssued,
			entities.BillingStatusOverdue,
			entities.BillingStatusPending,
		},
		RequireBoleto: true,
	})
	if err != nil {
		return 0, err
	}
	log.Printf("[billing][usecase] sync start open=%d", len(open))

	updated := 0
	for _, f := range open {
		external, err := u.paymentStatus(ctx, f.BoletoID)
		if err != nil {
			log.Printf("[billing][usecase] sync status failed freight_id=%s boleto_id=%s err=%v", f.ID, f.BoletoID, err)
			continue
		}
		status, ok := externalBillingStatus(external)
		if !ok || status == f.BillingStatus {
			continue
		}
		if err := u.setBillingStatus(ctx, f, status); err != nil {
			log.Printf("[billing][usecase] sync update failed freight_id=%s err=%v", f.ID, err)
			continue
		}
		updated++
	}
	log.Printf("[billing][usecase] sync done updated=%d", updated)
	return updated, nil
}

func (u *BillingUseCase) paymentStatus(ctx context.Context, externalID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	return u.gateway.GetPaymentStatus(ctx, externalID)
}

func (u *BillingUseCase) setBillingStatus(ctx context.Context, f entities.Freight, status entities.BillingStatus) error {
	now := u.now()
	from := f.BillingStatus
	f.BillingStatus = status
	f.UpdatedAt = now
	if _, err := u.freightRepo.Update(ctx, f); err != nil {
		return err
	}
	log.Printf("[billing][usecase] billing status freight_id=%s from=%s to=%s", f.ID, from, status)

	if status != entities.BillingStatusPaid {
		return nil
	}
	tx, err := u.txRepo.GetByFreightID(ctx, f.ID)
	if err != nil {
		return err
	}
	if tx.ID == "" {
		log.Printf("[billing][usecase] no receivable linked freight_id=%s", f.ID)
		return nil
	}
	tx.Status = entities.TransactionStatusCompleted
	tx.Date = now
	tx.UpdatedAt = now
	_, err = u.txRepo.Update(ctx, tx)
	return err
}

func (u *BillingUseCase) ListPending(ctx context.Context) ([]entities.Freight, error) {
	return u.freightRepo.Find(ctx, entities.FreightQuery{
		Statuses:        []entities.FreightStatus{entities.FreightStatusDelivered},
		BillingStatuses: []entities.BillingStatus{entities.BillingStatusPending},
		Order:           entities.FreightOrderCreatedAsc,
	})
}

func (u *BillingUseCase) ListIssued(ctx context.Context) ([]entities.Freight, error) {
	return u.freightRepo.Find(ctx, entities.FreightQuery{
		BillingStatuses: []entities.BillingStatus{
			entities.BillingStatusIssued,
			entities.BillingStatusPaid,
			entities.BillingStatusOverdue,
		},
		Order: entities.FreightOrderCreatedAsc,
	})
}

func (u *BillingUseCase) ListUnreconciledIntents(ctx context.Context) ([]entities.BillingIntent, error) {
	return u.intentRepo.ListByState(ctx, entities.BillingIntentExternalCreated)
}

func webhookBillingStatus(event string) (entities.BillingStatus, bool) {
	switch event {
	case EventPaymentReceived, EventPaymentConfirmed:
		return entities.BillingStatusPaid, true
	case EventPaymentOverdue:
		return entities.BillingStatusOverdue, true
	case EventPaymentRefunded:
		return entities.BillingStatusCancelled, true
	}
	return "", false
}

func externalBillingStatus(status string) (entities.BillingStatus, bool) {
	switch status {
	case interfaces.ExternalStatusReceived, interfaces.ExternalStatusConfirmed:
		return entities.BillingStatusPaid, true
	case interfaces.ExternalStatusOverdue:
		return entities.BillingStatusOverdue, true
	case interfaces.ExternalStatusRefunded:
		return entities.BillingStatusCancelled, true
	case interfaces.ExternalStatusPending:
		return entities.BillingStatusIssued, true
	}
	return "", false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

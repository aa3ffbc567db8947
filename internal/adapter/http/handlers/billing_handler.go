package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "eagles_transportes/internal/adapter/http/dto/request"
	response "eagles_transportes/internal/adapter/http/dto/response"
	"eagles_transportes/internal/usecase"
	"eagles_transportes/pkg"
)

// BillingHandler handles boleto emission and payment notifications.
type BillingHandler struct {
	usecase usecase.IBillingUseCase
}

func NewBillingHandler(uc usecase.IBillingUseCase) *BillingHandler {
	return &BillingHandler{usecase: uc}
}

// EmitBoleto godoc
// @Summary      Emit boleto for a delivered freight
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        freight_id path string                    true  "Freight ID"
// @Param        payload    body request.EmitBoletoRequest false "Overrides"
// @Success      200 {object} response.EmitBoletoResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Router       /billing/emit/{freight_id} [post]
func (h *BillingHandler) EmitBoleto(c *gin.Context) {
	freightID := c.Param("freight_id")
	log.Printf("[billing][handler] emit start freight_id=%s", freightID)

	var payload request.EmitBoletoRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			log.Printf("[billing][handler] invalid payload freight_id=%s err=%v", freightID, err)
			abortWith(c, errInvalidPayload)
			return
		}
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWith(c, pkg.NewDomainErrorSimple("INVALID_DUE_DATE", "Invalid due date", http.StatusBadRequest))
		return
	}

	f, err := h.usecase.Emit(c.Request.Context(), freightID, in)
	if err != nil {
		log.Printf("[billing][handler] emit failed freight_id=%s err=%v", freightID, err)
		abortWith(c, mapBillingError(err))
		return
	}
	log.Printf("[billing][handler] emit success freight_id=%s boleto_id=%s", freightID, f.BoletoID)
	c.JSON(http.StatusOK, response.FromEmittedFreight(f))
}

// Webhook always acknowledges known payloads; unknown events or boletos are ignored.
// @Summary      Payment gateway webhook
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        payload body request.WebhookRequest true "Event"
// @Success      200 {object} response.WebhookResponse
// @Router       /billing/webhook [post]
func (h *BillingHandler) Webhook(c *gin.Context) {
	var payload request.WebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	paymentID := string(payload.Payment.ID)
	applied, err := h.usecase.HandleWebhook(c.Request.Context(), payload.Event, paymentID)
	if err != nil {
		log.Printf("[billing][handler] webhook failed event=%s payment_id=%s err=%v", payload.Event, paymentID, err)
		abortWith(c, mapBillingError(err))
		return
	}
	c.JSON(http.StatusOK, response.WebhookResponse{Received: true, Applied: applied})
}

// SyncBilling godoc
// @Summary      Poll the gateway for open boletos
// @Tags         billing
// @Produce      json
// @Success      200 {object} response.SyncResponse
// @Router       /billing/sync [post]
func (h *BillingHandler) SyncBilling(c *gin.Context) {
	updated, err := h.usecase.Sync(c.Request.Context())
	if err != nil {
		abortWith(c, mapBillingError(err))
		return
	}
	c.JSON(http.StatusOK, response.SyncResponse{Updated: updated})
}

// ListPending godoc
// @Summary      Delivered freights awaiting a boleto
// @Tags         billing
// @Produce      json
// @Success      200 {array} response.FreightResponse
// @Router       /billing/pending [get]
func (h *BillingHandler) ListPending(c *gin.Context) {
	list, err := h.usecase.ListPending(c.Request.Context())
	if err != nil {
		abortWith(c, mapBillingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFreights(list))
}

// ListIssued godoc
// @Summary      Freights with an issued boleto
// @Tags         billing
// @Produce      json
// @Success      200 {array} response.FreightResponse
// @Router       /billing/issued [get]
func (h *BillingHandler) ListIssued(c *gin.Context) {
	list, err := h.usecase.ListIssued(c.Request.Context())
	if err != nil {
		abortWith(c, mapBillingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFreights(list))
}

// ListIntents returns boletos created at the gateway but never recorded locally.
// @Summary      Unreconciled billing intents
// @Tags         billing
// @Produce      json
// @Success      200 {array} response.BillingIntentResponse
// @Router       /billing/intents [get]
func (h *BillingHandler) ListIntents(c *gin.Context) {
	list, err := h.usecase.ListUnreconciledIntents(c.Request.Context())
	if err != nil {
		abortWith(c, mapBillingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBillingIntents(list))
}

func mapBillingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrFreightNotFound):
		return pkg.NewDomainErrorSimple("FREIGHT_NOT_FOUND", "Freight not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBoletoAlreadyIssued):
		return pkg.NewDomainErrorSimple("BOLETO_ALREADY_ISSUED", "Boleto already issued for this freight", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingWithoutClient), errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("FREIGHT_WITHOUT_CLIENT", "Freight has no client linked", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFreightNotDelivered):
		return pkg.NewDomainErrorSimple("FREIGHT_NOT_DELIVERED", "Freight not delivered", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBillingValue):
		return pkg.NewDomainErrorSimple("INVALID_BILLING_VALUE", "Invalid billing value", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDueDate):
		return pkg.NewDomainErrorSimple("INVALID_DUE_DATE", "Invalid due date", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayMissing):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return mapDomainError(err)
	}
}

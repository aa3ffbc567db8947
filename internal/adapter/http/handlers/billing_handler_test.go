package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"eagles_transportes/internal/adapter/http/handlers/mocks"
	"eagles_transportes/internal/domain/entities"
	"eagles_transportes/internal/usecase"
)

func newBillingRouter(t *testing.T) (*gin.Engine, *mocks.MockIBillingUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBillingUseCase(ctrl)
	h := NewBillingHandler(uc)

	r := gin.New()
	r.POST("/v1/billing/emit/:freight_id", h.EmitBoleto)
	r.POST("/v1/billing/webhook", h.Webhook)
	r.POST("/v1/billing/sync", h.SyncBilling)
	r.GET("/v1/billing/pending", h.ListPending)
	r.GET("/v1/billing/issued", h.ListIssued)
	r.GET("/v1/billing/intents", h.ListIntents)
	return r, uc
}

func TestBillingHandler_EmitBoleto(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"already issued", usecase.ErrBoletoAlreadyIssued, http.StatusConflict},
		{"not delivered", usecase.ErrFreightNotDelivered, http.StatusBadRequest},
		{"no client", usecase.ErrBillingWithoutClient, http.StatusBadRequest},
		{"freight missing", usecase.ErrFreightNotFound, http.StatusNotFound},
		{"gateway down", externalFailure(), http.StatusBadGateway},
		{"inconsistent", &usecase.InconsistentStateError{FreightID: "f-1", ExternalID: "123", Cause: errors.New("dynamo")}, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newBillingRouter(t)
			uc.EXPECT().Emit(gomock.Any(), "f-1", gomock.Any()).Return(entities.Freight{}, tc.err)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/billing/emit/f-1", nil))

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}

	t.Run("invalid due date", func(t *testing.T) {
		r, _ := newBillingRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/billing/emit/f-1", bytes.NewBufferString(`{"due_date":"20/03/2025"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success with overrides", func(t *testing.T) {
		r, uc := newBillingRouter(t)
		uc.EXPECT().Emit(gomock.Any(), "f-1", gomock.Any()).DoAndReturn(func(_ any, _ string, in usecase.EmitInput) (entities.Freight, error) {
			if !in.Value.Equal(decimal.RequireFromString("1500.50")) || in.DueDate.Day() != 20 {
				t.Fatalf("unexpected input: %+v", in)
			}
			due := in.DueDate
			return entities.Freight{ID: "f-1", BillingStatus: entities.BillingStatusIssued, BoletoID: "123", BoletoURL: "https://boleto", BoletoDueDate: &due}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/billing/emit/f-1", bytes.NewBufferString(`{"value":"1500.50","due_date":"2025-03-20"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["boleto_url"] != "https://boleto" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func externalFailure() error {
	return errors.Join(usecase.ErrExternalService, errors.New("timeout"))
}

func TestBillingHandler_Webhook(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newBillingRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/billing/webhook", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("applied", func(t *testing.T) {
		r, uc := newBillingRouter(t)
		uc.EXPECT().HandleWebhook(gomock.Any(), usecase.EventPaymentReceived, "pay_1").Return(true, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/billing/webhook", bytes.NewBufferString(`{"event":"PAYMENT_RECEIVED","payment":{"id":"pay_1"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["received"] != true || body["applied"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("ignored event", func(t *testing.T) {
		r, uc := newBillingRouter(t)
		uc.EXPECT().HandleWebhook(gomock.Any(), "PAYMENT_CREATED", "pay_1").Return(false, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/billing/webhook", bytes.NewBufferString(`{"event":"PAYMENT_CREATED","payment":{"id":"pay_1"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("numeric payment id", func(t *testing.T) {
		r, uc := newBillingRouter(t)
		uc.EXPECT().HandleWebhook(gomock.Any(), usecase.EventPaymentReceived, "123456789012").Return(true, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/billing/webhook", bytes.NewBufferString(`{"event":"PAYMENT_RECEIVED","payment":{"id":123456789012}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestBillingHandler_SyncAndLists(t *testing.T) {
	r, uc := newBillingRouter(t)
	uc.EXPECT().Sync(gomock.Any()).Return(2, nil)
	uc.EXPECT().ListPending(gomock.Any()).Return([]entities.Freight{{ID: "f-1"}}, nil)
	uc.EXPECT().ListIssued(gomock.Any()).Return(nil, errors.New("scan failed"))
	uc.EXPECT().ListUnreconciledIntents(gomock.Any()).Return([]entities.BillingIntent{{ID: "i-1", State: entities.BillingIntentExternalCreated, CreatedAt: time.Now()}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/billing/sync", nil))
	if w.Code != http.StatusOK || w.Body.String() != `{"updated":2}` {
		t.Fatalf("unexpected sync response: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/billing/pending", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/billing/issued", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/billing/intents", nil))
	var intents []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &intents)
	if w.Code != http.StatusOK || len(intents) != 1 || intents[0]["state"] != "EXTERNAL_CREATED" {
		t.Fatalf("unexpected intents response: %d %s", w.Code, w.Body.String())
	}
}

package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"eagles_transportes/internal/adapter/http/handlers/mocks"
	"eagles_transportes/internal/domain/entities"
	"eagles_transportes/internal/usecase"
)

func newFreightRouter(t *testing.T) (*gin.Engine, *mocks.MockIFreightUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIFreightUseCase(ctrl)
	h := NewFreightHandler(uc)

	r := gin.New()
	r.POST("/v1/freights", h.CreateFreight)
	r.GET("/v1/freights", h.ListFreights)
	r.GET("/v1/freights/:id", h.GetFreight)
	r.DELETE("/v1/freights/:id", h.DeleteFreight)
	r.POST("/v1/freights/:id/accept", h.AcceptFreight)
	r.POST("/v1/freights/:id/reject", h.RejectFreight)
	r.PATCH("/v1/freights/:id/status", h.SetFreightStatus)
	r.POST("/v1/freights/:id/deliver", h.DeliverFreight)
	r.GET("/v1/freights/:id/evidence/:index", h.GetEvidence)
	return r, uc
}

func multipartBody(t *testing.T, field string, names ...string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, n := range names {
		part, err := w.CreateFormFile(field, n)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		_, _ = part.Write([]byte("img-" + n))
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func TestFreightHandler_CreateFreight(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newFreightRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/freights", bytes.NewBufferString(`{"origin":"A"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		r, uc := newFreightRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Freight{}, usecase.ErrClientNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/freights", bytes.NewBufferString(
			`{"client_id":"c-9","origin":"A","destination":"B","pickup_date":"2025-03-14","delivery_date":"2025-03-16","valor_cliente":1000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newFreightRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.FreightInput) (entities.Freight, error) {
			if in.ClientID != "c-1" || in.PickupDate.Day() != 14 || in.ClientAmount.String() != "1000" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Freight{ID: "f-1", ClientID: "c-1", Status: entities.FreightStatusQuoted}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/freights", bytes.NewBufferString(
			`{"client_id":"c-1","origin":"A","destination":"B","pickup_date":"2025-03-14","delivery_date":"2025-03-16","valor_cliente":1000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "f-1" || body["status"] != "QUOTED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestFreightHandler_ListFreights(t *testing.T) {
	t.Run("invalid paging", func(t *testing.T) {
		r, _ := newFreightRouter(t)
		req := httptest.NewRequest(http.MethodGet, "/v1/freights?skip=-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newFreightRouter(t)
		uc.EXPECT().List(gomock.Any(), 10, 5).Return([]entities.Freight{{ID: "f-1"}, {ID: "f-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/freights?skip=10&limit=5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestFreightHandler_Transitions(t *testing.T) {
	t.Run("accept not allowed", func(t *testing.T) {
		r, uc := newFreightRouter(t)
		uc.EXPECT().Accept(gomock.Any(), "f-1").Return(entities.Freight{}, usecase.ErrTransitionNotAllowed)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/freights/f-1/accept", nil))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("accept success", func(t *testing.T) {
		r, uc := newFreightRouter(t)
		now := time.Now().UTC()
		uc.EXPECT().Accept(gomock.Any(), "f-1").Return(entities.Freight{ID: "f-1", Status: entities.FreightStatusAssigned, AcceptedAt: &now}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/freights/f-1/accept", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject without reason", func(t *testing.T) {
		r, uc := newFreightRouter(t)
		uc.EXPECT().Reject(gomock.Any(), "f-1", "").Return(entities.Freight{}, usecase.ErrMissingReason)

		req := httptest.NewRequest(http.MethodPost, "/v1/freights/f-1/reject", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("status from query", func(t *testing.T) {
		r, uc := newFreightRouter(t)
		uc.EXPECT().SetStatus(gomock.Any(), "f-1", "LOADING").Return(entities.Freight{ID: "f-1", Status: entities.FreightStatusLoading}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/freights/f-1/status?status=LOADING", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("status from body", func(t *testing.T) {
		r, uc := newFreightRouter(t)
		uc.EXPECT().SetStatus(gomock.Any(), "f-1", "IN_TRANSIT").Return(entities.Freight{ID: "f-1", Status: entities.FreightStatusInTransit}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/freights/f-1/status", bytes.NewBufferString(`{"status":"IN_TRANSIT"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestFreightHandler_DeliverFreight(t *testing.T) {
	t.Run("no multipart form", func(t *testing.T) {
		r, _ := newFreightRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/freights/f-1/deliver", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("insufficient evidence", func(t *testing.T) {
		r, uc := newFreightRouter(t)
		uc.EXPECT().Deliver(gomock.Any(), "f-1", gomock.Len(2)).Return(entities.Freight{}, usecase.ErrInsufficientEvidence)

		body, ct := multipartBody(t, "files", "a.jpg", "b.jpg")
		req := httptest.NewRequest(http.MethodPost, "/v1/freights/f-1/deliver", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newFreightRouter(t)
		now := time.Now().UTC()
		uc.EXPECT().Deliver(gomock.Any(), "f-1", gomock.Len(3)).DoAndReturn(func(_ any, _ string, files []usecase.EvidenceFile) (entities.Freight, error) {
			if files[0].Name != "a.jpg" || string(files[0].Data) != "img-a.jpg" {
				t.Fatalf("unexpected file: %+v", files[0])
			}
			return entities.Freight{
				ID:               "f-1",
				Status:           entities.FreightStatusDelivered,
				DeliveredAt:      &now,
				DeliveryEvidence: []string{"r1", "r2", "r3"},
			}, nil
		})

		body, ct := multipartBody(t, "files", "a.jpg", "b.jpg", "c.jpg")
		req := httptest.NewRequest(http.MethodPost, "/v1/freights/f-1/deliver", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var res struct {
			Photos []string `json:"photos"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if len(res.Photos) != 3 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestFreightHandler_GetEvidence(t *testing.T) {
	t.Run("bad index", func(t *testing.T) {
		r, _ := newFreightRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/freights/f-1/evidence/x", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing", func(t *testing.T) {
		r, uc := newFreightRouter(t)
		uc.EXPECT().Evidence(gomock.Any(), "f-1", 4).Return(usecase.EvidenceFile{}, usecase.ErrEvidenceNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/freights/f-1/evidence/4", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newFreightRouter(t)
		uc.EXPECT().Evidence(gomock.Any(), "f-1", 0).Return(usecase.EvidenceFile{Name: "a.txt", Data: []byte("hello")}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/freights/f-1/evidence/0", nil))

		if w.Code != http.StatusOK || w.Body.String() != "hello" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="a.txt"` {
			t.Fatalf("unexpected disposition: %q", got)
		}
	})
}

func TestFreightHandler_DeleteFreight(t *testing.T) {
	r, uc := newFreightRouter(t)
	uc.EXPECT().Delete(gomock.Any(), "f-1").Return(usecase.ErrFreightNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/freights/f-1", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

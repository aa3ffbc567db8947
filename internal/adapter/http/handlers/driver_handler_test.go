package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"eagles_transportes/internal/adapter/http/handlers/mocks"
	"eagles_transportes/internal/domain/entities"
	"eagles_transportes/internal/usecase"
)

func newDriverRouter(t *testing.T) (*gin.Engine, *mocks.MockIDriverUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDriverUseCase(ctrl)
	h := NewDriverHandler(uc)

	r := gin.New()
	r.POST("/v1/drivers", h.CreateDriver)
	r.GET("/v1/drivers", h.ListDrivers)
	r.GET("/v1/drivers/:id", h.GetDriver)
	r.PATCH("/v1/drivers/:id/status", h.UpdateDriverStatus)
	r.POST("/v1/drivers/:id/documents/:kind", h.UploadDocument)
	r.DELETE("/v1/drivers/:id", h.DeleteDriver)
	return r, uc
}

func TestDriverHandler_CreateDriver(t *testing.T) {
	t.Run("duplicate cpf", func(t *testing.T) {
		r, uc := newDriverRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Driver{}, usecase.ErrDriverTaxIDExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/drivers", bytes.NewBufferString(`{"name":"Joao","cpf":"529.982.247-25"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newDriverRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.DriverInput) (entities.Driver, error) {
			if in.VehicleType != "carreta ls" {
				t.Fatalf("handler must pass vehicle type through: %+v", in)
			}
			return entities.Driver{ID: "d-1", Name: in.Name, VehicleType: "CARRETA LS", Status: entities.DriverStatusPending}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/drivers", bytes.NewBufferString(`{"name":"Joao","cpf":"52998224725","vehicle_type":"carreta ls"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestDriverHandler_UpdateDriverStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		r, uc := newDriverRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "d-1", "BUSY").Return(entities.Driver{}, usecase.ErrInvalidDriverStatus)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/drivers/d-1/status?status=BUSY", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newDriverRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "d-1", "ACTIVE").Return(entities.Driver{ID: "d-1", Status: entities.DriverStatusActive}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/drivers/d-1/status?status=ACTIVE", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "ACTIVE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDriverHandler_UploadDocument(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		r, _ := newDriverRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/drivers/d-1/documents/cnh", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		r, uc := newDriverRouter(t)
		uc.EXPECT().UploadDocument(gomock.Any(), "d-1", "passport", gomock.Any()).Return(entities.Driver{}, usecase.ErrInvalidDocumentKind)

		body, ct := multipartBody(t, "file", "doc.pdf")
		req := httptest.NewRequest(http.MethodPost, "/v1/drivers/d-1/documents/passport", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newDriverRouter(t)
		uc.EXPECT().UploadDocument(gomock.Any(), "d-1", "cnh", usecase.EvidenceFile{Name: "doc.pdf", Data: []byte("img-doc.pdf")}).
			Return(entities.Driver{ID: "d-1", Documents: entities.DriverDocuments{CNH: "ref"}}, nil)

		body, ct := multipartBody(t, "file", "doc.pdf")
		req := httptest.NewRequest(http.MethodPost, "/v1/drivers/d-1/documents/cnh", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDriverHandler_GetAndDelete(t *testing.T) {
	r, uc := newDriverRouter(t)
	uc.EXPECT().GetByID(gomock.Any(), "d-9").Return(entities.Driver{}, usecase.ErrDriverNotFound)
	uc.EXPECT().Delete(gomock.Any(), "d-1").Return(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/drivers/d-9", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/drivers/d-1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

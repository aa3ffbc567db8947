package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"eagles_transportes/internal/usecase"
	"eagles_transportes/pkg"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidPaging  = pkg.NewDomainErrorSimple("INVALID_PAGINATION", "skip and limit must be non-negative integers", http.StatusBadRequest)
	errMissingFiles   = pkg.NewDomainErrorSimple("MISSING_FILES", "No files were uploaded", http.StatusBadRequest)
)

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapDomainError maps the use case error kinds. Handlers check their specific
// errors first and fall back to this.
func mapDomainError(err error) *pkg.AppError {
	var inconsistent *usecase.InconsistentStateError
	switch {
	case errors.As(err, &inconsistent):
		return pkg.NewDomainError("BILLING_INCONSISTENT_STATE", "Boleto issued but not recorded; pending reconciliation", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainError("CONFLICT", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrExternalService):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// pageParams reads skip/limit. Zero means "use the default".
func pageParams(c *gin.Context) (int, int, bool) {
	offset, ok := nonNegativeQuery(c, "skip")
	if !ok {
		return 0, 0, false
	}
	limit, ok := nonNegativeQuery(c, "limit")
	if !ok {
		return 0, 0, false
	}
	return offset, limit, true
}

func nonNegativeQuery(c *gin.Context, key string) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func readUpload(fh *multipart.FileHeader) (usecase.EvidenceFile, error) {
	f, err := fh.Open()
	if err != nil {
		return usecase.EvidenceFile{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return usecase.EvidenceFile{}, err
	}
	return usecase.EvidenceFile{Name: fh.Filename, Data: data}, nil
}

func clockIn(loc *time.Location) func() time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return func() time.Time { return time.Now().In(loc) }
}

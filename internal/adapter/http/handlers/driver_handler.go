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

var errInvalidDriverPayload = pkg.NewDomainErrorSimple("INVALID_DRIVER_INPUT", "Invalid driver payload", http.StatusBadRequest)

type DriverHandler struct {
	usecase usecase.IDriverUseCase
}

func NewDriverHandler(uc usecase.IDriverUseCase) *DriverHandler {
	return &DriverHandler{usecase: uc}
}

// CreateDriver godoc
// @Summary      Create driver
// @Tags         drivers
// @Accept       json
// @Produce      json
// @Param        payload body request.DriverRequest true "Driver"
// @Success      201 {object} response.DriverResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /drivers [post]
func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var payload request.DriverRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidDriverPayload)
		return
	}

	d, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[driver][handler] create failed err=%v", err)
		abortWith(c, mapDriverError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromDriver(d))
}

// ListDrivers godoc
// @Summary      List drivers
// @Tags         drivers
// @Produce      json
// @Param        skip  query int false "Offset"
// @Param        limit query int false "Page size"
// @Success      200 {array} response.DriverResponse
// @Router       /drivers [get]
func (h *DriverHandler) ListDrivers(c *gin.Context) {
	offset, limit, ok := pageParams(c)
	if !ok {
		abortWith(c, errInvalidPaging)
		return
	}
	list, err := h.usecase.List(c.Request.Context(), offset, limit)
	if err != nil {
		abortWith(c, mapDriverError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDrivers(list))
}

// GetDriver godoc
// @Summary      Get driver
// @Tags         drivers
// @Produce      json
// @Param        id path string true "Driver ID"
// @Success      200 {object} response.DriverResponse
// @Router       /drivers/{id} [get]
func (h *DriverHandler) GetDriver(c *gin.Context) {
	d, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapDriverError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDriver(d))
}

// UpdateDriver godoc
// @Summary      Update driver
// @Tags         drivers
// @Accept       json
// @Produce      json
// @Param        id      path string                true "Driver ID"
// @Param        payload body request.DriverRequest true "Driver"
// @Success      200 {object} response.DriverResponse
// @Router       /drivers/{id} [put]
func (h *DriverHandler) UpdateDriver(c *gin.Context) {
	var payload request.DriverRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidDriverPayload)
		return
	}

	d, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWith(c, mapDriverError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDriver(d))
}

// UpdateDriverStatus accepts ?status= or a JSON body.
// @Summary      Update driver status
// @Tags         drivers
// @Produce      json
// @Param        id     path  string true  "Driver ID"
// @Param        status query string false "ACTIVE, INACTIVE or PENDING"
// @Success      200 {object} response.DriverStatusResponse
// @Router       /drivers/{id}/status [patch]
func (h *DriverHandler) UpdateDriverStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" && c.Request.ContentLength != 0 {
		var payload request.StatusRequest
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortWith(c, errInvalidPayload)
			return
		}
		status = payload.Status
	}

	d, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		abortWith(c, mapDriverError(err))
		return
	}
	c.JSON(http.StatusOK, response.DriverStatusResponse{Message: "Status updated", Status: string(d.Status)})
}

// UploadDocument godoc
// @Summary      Upload a driver document
// @Tags         drivers
// @Accept       multipart/form-data
// @Produce      json
// @Param        id   path     string true "Driver ID"
// @Param        kind path     string true "cnh, address_proof or crlv"
// @Param        file formData file   true "Document"
// @Success      200 {object} response.DriverResponse
// @Router       /drivers/{id}/documents/{kind} [post]
func (h *DriverHandler) UploadDocument(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		abortWith(c, errMissingFiles)
		return
	}
	file, err := readUpload(fh)
	if err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	d, err := h.usecase.UploadDocument(c.Request.Context(), c.Param("id"), c.Param("kind"), file)
	if err != nil {
		abortWith(c, mapDriverError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDriver(d))
}

// DeleteDriver godoc
// @Summary      Delete driver
// @Tags         drivers
// @Param        id path string true "Driver ID"
// @Success      200 {object} response.MessageResponse
// @Router       /drivers/{id} [delete]
func (h *DriverHandler) DeleteDriver(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWith(c, mapDriverError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Driver deleted"})
}

func mapDriverError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDriverNotFound):
		return pkg.NewDomainErrorSimple("DRIVER_NOT_FOUND", "Driver not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDriverTaxIDExists):
		return pkg.NewDomainErrorSimple("DRIVER_ALREADY_EXISTS", "Driver with this CPF already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTaxID):
		return pkg.NewDomainErrorSimple("INVALID_TAX_ID", "Invalid CPF", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDriverStatus):
		return pkg.NewDomainErrorSimple("INVALID_DRIVER_STATUS", "Invalid driver status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDocumentKind):
		return pkg.NewDomainErrorSimple("INVALID_DOCUMENT_KIND", "Document kind must be cnh, address_proof or crlv", http.StatusBadRequest)
	default:
		return mapDomainError(err)
	}
}

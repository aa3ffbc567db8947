package handlers

import (
	"errors"
	"log"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	request "eagles_transportes/internal/adapter/http/dto/request"
	response "eagles_transportes/internal/adapter/http/dto/response"
	"eagles_transportes/internal/usecase"
	"eagles_transportes/pkg"
)

var (
	errInvalidFreightPayload = pkg.NewDomainErrorSimple("INVALID_FREIGHT_INPUT", "Invalid freight payload", http.StatusBadRequest)
)

// FreightHandler exposes the freight lifecycle.
type FreightHandler struct {
	usecase usecase.IFreightUseCase
}

func NewFreightHandler(uc usecase.IFreightUseCase) *FreightHandler {
	return &FreightHandler{usecase: uc}
}

// CreateFreight godoc
// @Summary      Create freight
// @Tags         freights
// @Accept       json
// @Produce      json
// @Param        payload body request.FreightRequest true "Freight"
// @Success      201 {object} response.FreightResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /freights [post]
func (h *FreightHandler) CreateFreight(c *gin.Context) {
	var payload request.FreightRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidFreightPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWith(c, errInvalidFreightPayload)
		return
	}

	f, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		log.Printf("[freight][handler] create failed client_id=%s err=%v", in.ClientID, err)
		abortWith(c, mapFreightError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromFreight(f))
}

// ListFreights godoc
// @Summary      List freights
// @Tags         freights
// @Produce      json
// @Param        skip  query int false "Offset"
// @Param        limit query int false "Page size"
// @Success      200 {array} response.FreightResponse
// @Router       /freights [get]
func (h *FreightHandler) ListFreights(c *gin.Context) {
	offset, limit, ok := pageParams(c)
	if !ok {
		abortWith(c, errInvalidPaging)
		return
	}
	list, err := h.usecase.List(c.Request.Context(), offset, limit)
	if err != nil {
		abortWith(c, mapFreightError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFreights(list))
}

// GetFreight godoc
// @Summary      Get freight
// @Tags         freights
// @Produce      json
// @Param        id path string true "Freight ID"
// @Success      200 {object} response.FreightResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /freights/{id} [get]
func (h *FreightHandler) GetFreight(c *gin.Context) {
	f, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapFreightError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFreight(f))
}

// UpdateFreight replaces the freight, status included, without transition guards.
// @Summary      Replace freight
// @Tags         freights
// @Accept       json
// @Produce      json
// @Param        id      path string                 true "Freight ID"
// @Param        payload body request.FreightRequest true "Freight"
// @Success      200 {object} response.FreightResponse
// @Router       /freights/{id} [put]
func (h *FreightHandler) UpdateFreight(c *gin.Context) {
	var payload request.FreightRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidFreightPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWith(c, errInvalidFreightPayload)
		return
	}

	f, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		abortWith(c, mapFreightError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFreight(f))
}

// DeleteFreight godoc
// @Summary      Delete freight
// @Tags         freights
// @Param        id path string true "Freight ID"
// @Success      200 {object} response.MessageResponse
// @Router       /freights/{id} [delete]
func (h *FreightHandler) DeleteFreight(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWith(c, mapFreightError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Freight deleted"})
}

// AssignDriver godoc
// @Summary      Assign driver
// @Tags         freights
// @Produce      json
// @Param        id        path string true "Freight ID"
// @Param        driver_id path string true "Driver ID"
// @Success      200 {object} response.FreightResponse
// @Router       /freights/{id}/assign/{driver_id} [patch]
func (h *FreightHandler) AssignDriver(c *gin.Context) {
	f, err := h.usecase.AssignDriver(c.Request.Context(), c.Param("id"), c.Param("driver_id"))
	if err != nil {
		abortWith(c, mapFreightError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFreight(f))
}

// AcceptFreight godoc
// @Summary      Driver accepts the freight
// @Tags         freights
// @Produce      json
// @Param        id path string true "Freight ID"
// @Success      200 {object} response.FreightResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /freights/{id}/accept [post]
func (h *FreightHandler) AcceptFreight(c *gin.Context) {
	f, err := h.usecase.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapFreightError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFreight(f))
}

// RejectFreight godoc
// @Summary      Reject freight
// @Tags         freights
// @Accept       json
// @Produce      json
// @Param        id      path string                       true "Freight ID"
// @Param        payload body request.RejectFreightRequest true "Reason"
// @Success      200 {object} response.FreightResponse
// @Router       /freights/{id}/reject [post]
func (h *FreightHandler) RejectFreight(c *gin.Context) {
	var payload request.RejectFreightRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	f, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), payload.Reason)
	if err != nil {
		abortWith(c, mapFreightError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFreight(f))
}

// SetFreightStatus overrides the status with no guard. Accepts ?status= or a JSON body.
// @Summary      Override freight status
// @Tags         freights
// @Produce      json
// @Param        id     path  string true  "Freight ID"
// @Param        status query string false "New status"
// @Success      200 {object} response.FreightResponse
// @Router       /freights/{id}/status [patch]
func (h *FreightHandler) SetFreightStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" && c.Request.ContentLength != 0 {
		var payload request.StatusRequest
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortWith(c, errInvalidPayload)
			return
		}
		status = payload.Status
	}

	f, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		abortWith(c, mapFreightError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFreight(f))
}

// DeliverFreight godoc
// @Summary      Confirm delivery with at least 3 proof files
// @Tags         freights
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path     string true "Freight ID"
// @Param        files formData file   true "Delivery proofs"
// @Success      200 {object} response.DeliveryResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /freights/{id}/deliver [post]
func (h *FreightHandler) DeliverFreight(c *gin.Context) {
	id := c.Param("id")
	form, err := c.MultipartForm()
	if err != nil {
		abortWith(c, errMissingFiles)
		return
	}

	headers := form.File["files"]
	files := make([]usecase.EvidenceFile, 0, len(headers))
	for _, fh := range headers {
		file, err := readUpload(fh)
		if err != nil {
			log.Printf("[freight][handler] read upload failed freight_id=%s file=%s err=%v", id, fh.Filename, err)
			abortWith(c, errInvalidPayload)
			return
		}
		files = append(files, file)
	}

	f, err := h.usecase.Deliver(c.Request.Context(), id, files)
	if err != nil {
		abortWith(c, mapFreightError(err))
		return
	}
	res := response.FromFreight(f)
	c.JSON(http.StatusOK, response.DeliveryResponse{Message: "Delivery confirmed", Photos: res.DeliveryPhotos, Freight: res})
}

// GetEvidence godoc
// @Summary      Download a delivery proof
// @Tags         freights
// @Produce      octet-stream
// @Param        id    path string true "Freight ID"
// @Param        index path int    true "Proof position"
// @Success      200 {file} file
// @Failure      404 {object} pkg.HTTPError
// @Router       /freights/{id}/evidence/{index} [get]
func (h *FreightHandler) GetEvidence(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	file, err := h.usecase.Evidence(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		abortWith(c, mapFreightError(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+strings.ReplaceAll(path.Base(file.Name), `"`, "")+`"`)
	c.Data(http.StatusOK, http.DetectContentType(file.Data), file.Data)
}

func mapFreightError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrFreightNotFound):
		return pkg.NewDomainErrorSimple("FREIGHT_NOT_FOUND", "Freight not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDriverNotFound):
		return pkg.NewDomainErrorSimple("DRIVER_NOT_FOUND", "Driver not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEvidenceNotFound):
		return pkg.NewDomainErrorSimple("DELIVERY_PROOF_NOT_FOUND", "Delivery proof not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInsufficientEvidence):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_DELIVERY_PROOFS", "Minimum of 3 photos required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingReason):
		return pkg.NewDomainErrorSimple("MISSING_REJECTION_REASON", "Rejection reason is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransitionNotAllowed):
		return pkg.NewDomainErrorSimple("TRANSITION_NOT_ALLOWED", "Status transition not allowed", http.StatusConflict)
	default:
		return mapDomainError(err)
	}
}

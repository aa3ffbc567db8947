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

var errInvalidClientPayload = pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", "Invalid client payload", http.StatusBadRequest)

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// CreateClient godoc
// @Summary      Create client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        payload body request.ClientRequest true "Client"
// @Success      201 {object} response.ClientResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidClientPayload)
		return
	}

	client, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[client][handler] create failed err=%v", err)
		abortWith(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(client))
}

// ListClients godoc
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Param        skip  query int false "Offset"
// @Param        limit query int false "Page size"
// @Success      200 {array} response.ClientResponse
// @Router       /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	offset, limit, ok := pageParams(c)
	if !ok {
		abortWith(c, errInvalidPaging)
		return
	}
	list, err := h.usecase.List(c.Request.Context(), offset, limit)
	if err != nil {
		abortWith(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClients(list))
}

// GetClient godoc
// @Summary      Get client
// @Tags         clients
// @Produce      json
// @Param        id path string true "Client ID"
// @Success      200 {object} response.ClientResponse
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// UpdateClient godoc
// @Summary      Update client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id      path string                true "Client ID"
// @Param        payload body request.ClientRequest true "Client"
// @Success      200 {object} response.ClientResponse
// @Router       /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidClientPayload)
		return
	}

	client, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWith(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// DeleteClient godoc
// @Summary      Delete client
// @Tags         clients
// @Param        id path string true "Client ID"
// @Success      204
// @Router       /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWith(c, mapClientError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTaxID):
		return pkg.NewDomainErrorSimple("INVALID_TAX_ID", "Invalid CPF/CNPJ", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientTaxIDExists):
		return pkg.NewDomainErrorSimple("CLIENT_ALREADY_EXISTS", "Client with this CPF/CNPJ already registered", http.StatusConflict)
	default:
		return mapDomainError(err)
	}
}

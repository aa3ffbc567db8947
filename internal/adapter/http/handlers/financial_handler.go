package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	request "eagles_transportes/internal/adapter/http/dto/request"
	response "eagles_transportes/internal/adapter/http/dto/response"
	"eagles_transportes/internal/usecase"
	"eagles_transportes/pkg"
)

var (
	errInvalidTransactionPayload = pkg.NewDomainErrorSimple("INVALID_TRANSACTION_INPUT", "Invalid transaction payload", http.StatusBadRequest)
	errInvalidPeriodQuery        = pkg.NewDomainErrorSimple("INVALID_PERIOD", "Invalid period", http.StatusBadRequest)
)

type FinancialHandler struct {
	usecase usecase.IFinancialUseCase
	now     func() time.Time
}

func NewFinancialHandler(uc usecase.IFinancialUseCase, loc *time.Location) *FinancialHandler {
	return &FinancialHandler{usecase: uc, now: clockIn(loc)}
}

// CreateTransaction godoc
// @Summary      Create transaction
// @Tags         financial
// @Accept       json
// @Produce      json
// @Param        payload body request.TransactionRequest true "Transaction"
// @Success      201 {object} response.TransactionResponse
// @Router       /financial/transactions [post]
func (h *FinancialHandler) CreateTransaction(c *gin.Context) {
	var payload request.TransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidTransactionPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWith(c, errInvalidTransactionPayload)
		return
	}

	t, err := h.usecase.CreateTransaction(c.Request.Context(), in)
	if err != nil {
		abortWith(c, mapFinancialError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTransaction(t))
}

// ListTransactions godoc
// @Summary      List transactions, newest first
// @Tags         financial
// @Produce      json
// @Param        type   query string false "INCOME or EXPENSE"
// @Param        status query string false "Status"
// @Param        skip   query int    false "Offset"
// @Param        limit  query int    false "Page size"
// @Success      200 {array} response.TransactionResponse
// @Router       /financial/transactions [get]
func (h *FinancialHandler) ListTransactions(c *gin.Context) {
	offset, limit, ok := pageParams(c)
	if !ok {
		abortWith(c, errInvalidPaging)
		return
	}

	list, err := h.usecase.ListTransactions(c.Request.Context(), usecase.TransactionListFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		abortWith(c, mapFinancialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(list))
}

// GetTransaction godoc
// @Summary      Get transaction
// @Tags         financial
// @Produce      json
// @Param        id path string true "Transaction ID"
// @Success      200 {object} response.TransactionResponse
// @Router       /financial/transactions/{id} [get]
func (h *FinancialHandler) GetTransaction(c *gin.Context) {
	t, err := h.usecase.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapFinancialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(t))
}

// UpdateTransaction godoc
// @Summary      Patch transaction
// @Tags         financial
// @Accept       json
// @Produce      json
// @Param        id      path string                          true "Transaction ID"
// @Param        payload body request.TransactionPatchRequest true "Fields to change"
// @Success      200 {object} response.TransactionResponse
// @Router       /financial/transactions/{id} [patch]
func (h *FinancialHandler) UpdateTransaction(c *gin.Context) {
	var payload request.TransactionPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidTransactionPayload)
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		abortWith(c, errInvalidTransactionPayload)
		return
	}

	t, err := h.usecase.UpdateTransaction(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		abortWith(c, mapFinancialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(t))
}

// DeleteTransaction godoc
// @Summary      Delete transaction
// @Tags         financial
// @Param        id path string true "Transaction ID"
// @Success      200 {object} response.MessageResponse
// @Router       /financial/transactions/{id} [delete]
func (h *FinancialHandler) DeleteTransaction(c *gin.Context) {
	if err := h.usecase.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		abortWith(c, mapFinancialError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Transaction deleted"})
}

// GetSummary godoc
// @Summary      Totals for a month, a year or everything
// @Tags         financial
// @Produce      json
// @Param        month query int false "1-12"
// @Param        year  query int false "Year"
// @Success      200 {object} response.SummaryResponse
// @Router       /financial/summary [get]
func (h *FinancialHandler) GetSummary(c *gin.Context) {
	month, ok := nonNegativeQuery(c, "month")
	if !ok {
		abortWith(c, errInvalidPeriodQuery)
		return
	}
	year, ok := nonNegativeQuery(c, "year")
	if !ok {
		abortWith(c, errInvalidPeriodQuery)
		return
	}

	s, err := h.usecase.Summary(c.Request.Context(), month, year)
	if err != nil {
		abortWith(c, mapFinancialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSummary(s))
}

// GetHistory godoc
// @Summary      Monthly income and expense series
// @Tags         financial
// @Produce      json
// @Param        months query int false "Number of months (default 12)"
// @Success      200 {array} response.MonthlyBalanceResponse
// @Router       /financial/history [get]
func (h *FinancialHandler) GetHistory(c *gin.Context) {
	months, ok := nonNegativeQuery(c, "months")
	if !ok {
		abortWith(c, errInvalidPeriodQuery)
		return
	}

	hist, err := h.usecase.History(c.Request.Context(), months, h.now())
	if err != nil {
		abortWith(c, mapFinancialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromHistory(hist))
}

func mapFinancialError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPeriod):
		return errInvalidPeriodQuery
	default:
		return mapDomainError(err)
	}
}

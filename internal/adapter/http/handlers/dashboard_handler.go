package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	response "eagles_transportes/internal/adapter/http/dto/response"
	"eagles_transportes/internal/usecase"
	"eagles_transportes/pkg"
)

type DashboardHandler struct {
	usecase usecase.IAnalyticsUseCase
	now     func() time.Time
}

// NewDashboardHandler evaluates dashboard periods in loc (UTC when nil).
func NewDashboardHandler(uc usecase.IAnalyticsUseCase, loc *time.Location) *DashboardHandler {
	return &DashboardHandler{usecase: uc, now: clockIn(loc)}
}

// GetStats godoc
// @Summary      Dashboard KPIs, recent freights and breakdowns
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} response.DashboardResponse
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.DashboardStats(c.Request.Context(), h.now())
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardStats(stats))
}

// Drilldown lists the freights behind a breakdown bucket or KPI.
// @Summary      Dashboard drill-down
// @Tags         dashboard
// @Produce      json
// @Param        filter_type  query string true "state, vehicle or kpi"
// @Param        filter_value query string true "Bucket name or active/today/delayed"
// @Success      200 {array} response.FreightResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /dashboard/drilldown [get]
func (h *DashboardHandler) Drilldown(c *gin.Context) {
	list, err := h.usecase.Drilldown(c.Request.Context(), c.Query("filter_type"), c.Query("filter_value"), h.now())
	if err != nil {
		abortWith(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFreights(list))
}

func mapDashboardError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidDrilldown) {
		return pkg.NewDomainErrorSimple("INVALID_DRILLDOWN", "Invalid drill-down filter", http.StatusBadRequest)
	}
	return mapDomainError(err)
}

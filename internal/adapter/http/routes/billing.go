package routes

import (
	"eagles_transportes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBilling   = "/billing"
	PathDashboard = "/dashboard"
	PathFinancial = "/financial"
)

func addBillingRoutes(rg *gin.RouterGroup, h *handlers.BillingHandler) {
	billing := rg.Group(PathBilling)
	{
		billing.POST("/emit/:freight_id", h.EmitBoleto)
		// Called by the payment gateway.
		billing.POST("/webhook", h.Webhook)
		billing.POST("/sync", h.SyncBilling)
		billing.GET("/pending", h.ListPending)
		billing.GET("/issued", h.ListIssued)
		billing.GET("/intents", h.ListIntents)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/stats", h.GetStats)
		dashboard.GET("/drilldown", h.Drilldown)
	}
}

func addFinancialRoutes(rg *gin.RouterGroup, h *handlers.FinancialHandler) {
	financial := rg.Group(PathFinancial)
	{
		financial.GET("/summary", h.GetSummary)
		financial.GET("/history", h.GetHistory)
		financial.GET("/transactions", h.ListTransactions)
		financial.POST("/transactions", h.CreateTransaction)
		financial.GET("/transactions/:id", h.GetTransaction)
		financial.PATCH("/transactions/:id", h.UpdateTransaction)
		financial.DELETE("/transactions/:id", h.DeleteTransaction)
	}
}

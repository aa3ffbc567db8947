package routes

import (
	"eagles_transportes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathFreights = "/freights"
	PathClients  = "/clients"
	PathDrivers  = "/drivers"
)

func addFreightRoutes(rg *gin.RouterGroup, h *handlers.FreightHandler) {
	freights := rg.Group(PathFreights)
	{
		freights.POST("", h.CreateFreight)
		freights.GET("", h.ListFreights)
		freights.GET("/:id", h.GetFreight)
		freights.PUT("/:id", h.UpdateFreight)
		freights.DELETE("/:id", h.DeleteFreight)
		freights.PATCH("/:id/status", h.SetFreightStatus)
		freights.PATCH("/:id/assign/:driver_id", h.AssignDriver)
		freights.POST("/:id/accept", h.AcceptFreight)
		freights.POST("/:id/reject", h.RejectFreight)
		freights.POST("/:id/deliver", h.DeliverFreight)
		freights.GET("/:id/evidence/:index", h.GetEvidence)
	}
}

func addClientRoutes(rg *gin.RouterGroup, h *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", h.CreateClient)
		clients.GET("", h.ListClients)
		clients.GET("/:id", h.GetClient)
		clients.PUT("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)
	}
}

func addDriverRoutes(rg *gin.RouterGroup, h *handlers.DriverHandler) {
	drivers := rg.Group(PathDrivers)
	{
		drivers.POST("", h.CreateDriver)
		drivers.GET("", h.ListDrivers)
		drivers.GET("/:id", h.GetDriver)
		drivers.PUT("/:id", h.UpdateDriver)
		drivers.DELETE("/:id", h.DeleteDriver)
		drivers.PATCH("/:id/status", h.UpdateDriverStatus)
		drivers.POST("/:id/documents/:kind", h.UploadDocument)
	}
}

package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Регистрация и сессия
	api.POST("/users", h.registerUser)
	api.PUT("/users/:uid/details", h.completeProfile)
	api.GET("/session", h.getSession)

	// Маршруты одобрения учетных записей, за API-ключом
	admin := api.Group("/admin", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		admin.GET("/users", h.listUsers)
		admin.POST("/users/:uid/approve", h.approveUser)
		admin.POST("/users/:uid/reject", h.rejectUser)
	}

	// Карта и риски наводнений
	flood := api.Group("/flood")
	{
		flood.GET("/features", h.getFloodFeatures)
		flood.GET("/risks", h.getFloodRisks)
		flood.POST("/zones/generate", h.generateZones)
		flood.GET("/zones", h.getZones)
	}

	// Прогноз погоды по округу
	api.GET("/weather/:district", h.getWeather)

	// Рабочие задания
	work := api.Group("/work")
	{
		work.POST("", h.createWork)
		work.GET("", h.getWorkBoard)
		work.GET("/stream", h.streamWork)
		work.POST("/:id/claim", h.claimWork)
		work.POST("/:id/complete", h.completeWork)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

package routes

import (
	"github.com/gin-gonic/gin"

	residencehandlers "github.com/sitedesk/sitedesk/internal/interfaces/http/handlers/residence"
	"github.com/sitedesk/sitedesk/internal/interfaces/http/middleware"
)

type ResidenceRouteConfig struct {
	Handler        *residencehandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
	// RateLimiter guards mutating routes; nil disables it.
	RateLimiter *middleware.RateLimiter
}

func SetupResidenceRoutes(engine *gin.Engine, config *ResidenceRouteConfig) {
	h := config.Handler

	api := engine.Group("/api")
	api.Use(config.AuthMiddleware.RequireAuth())

	mutate := []gin.HandlerFunc{}
	if config.RateLimiter != nil {
		mutate = append(mutate, config.RateLimiter.Limit())
	}
	with := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, mutate...), handler)
	}

	sites := api.Group("/sites/:siteId")
	{
		sites.GET("/blocks", h.ListBlocks)
		sites.POST("/blocks", with(h.CreateBlock)...)
		sites.GET("/blocks/:blockId/apartments", h.ListApartments)
		sites.DELETE("/apartments/:blockId/:apartmentNo", with(h.DeleteApartment)...)

		// export must be registered before /residents/:userId
		sites.GET("/residents", h.ListResidents)
		sites.GET("/residents/export", h.ExportResidents)
		sites.POST("/residents", with(h.CreateResident)...)
		sites.PUT("/residents/:userId", with(h.UpdateResident)...)
	}

	api.PUT("/blocks/:blockId", with(h.UpdateBlock)...)
	api.DELETE("/blocks/:blockId", with(h.DeleteBlock)...)

	api.GET("/users/:userId", h.GetResident)
	api.DELETE("/residents/:id", with(h.DeleteResident)...)
}

package handlers

import (
	"solarquote/internal/logger"
	"solarquote/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Live estimate stream (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerApplianceRoutes(api)
		h.registerQuoteRoutes(api)
		h.registerAdvisorRoutes(api)
	}
}

func (h *Handler) registerApplianceRoutes(api *gin.RouterGroup) {
	appliances := api.Group("/appliances")
	{
		appliances.GET("", h.listAppliances)
		// Body example: {"name":"Washing Machine","wattage":500,"hours_per_day":1,"quantity":1}
		appliances.POST("", h.addAppliance)
		appliances.PUT("/:id", h.updateAppliance)
		appliances.DELETE("/:id", h.removeAppliance)
	}
	api.GET("/estimate", h.getEstimate)
}

func (h *Handler) registerQuoteRoutes(api *gin.RouterGroup) {
	quote := api.Group("/quote")
	{
		quote.POST("", h.submitQuote)
		quote.GET("/requests", h.quoteHistory)
	}
}

func (h *Handler) registerAdvisorRoutes(api *gin.RouterGroup) {
	advisor := api.Group("/advisor")
	{
		advisor.GET("/suggestions", h.getSuggestions)
		advisor.GET("/tips", h.getTips)
	}
}

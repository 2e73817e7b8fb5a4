package handlers

import (
	"vaillant_bridge/internal/logger"
	"vaillant_bridge/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "vaillant_bridge/docs"
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
// The route shapes mirror the facade contract: flat GET paths, JSON bodies,
// errors recovered into {"error": ...} payloads.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestID, h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health and browser noise
	router.GET("/health", h.health)
	router.GET("/favicon.ico", h.favicon)

	h.registerTelemetryRoutes(router)
	h.registerControlRoutes(router)

	// Periodic telemetry push, upgraded on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerTelemetryRoutes(r *gin.Engine) {
	r.GET("/boiler-consumption/:year/:month", h.boilerConsumption)
	r.GET("/boiler-consumption-current-month", h.boilerConsumptionCurrentMonth)
	r.GET("/zones", h.zones)
	r.GET("/zone-info/:index", h.zoneInfo)
	r.GET("/zone-flow-temperature/:index", h.zoneFlowTemperature)
	r.GET("/get-water-pressure", h.waterPressure)
	r.GET("/get-system-info", h.systemInfo)
}

func (h *Handler) registerControlRoutes(r *gin.Engine) {
	r.GET("/zone-update/:index/:mode", h.zoneUpdate)
	r.GET("/zone-set-temp/:index/:temp", h.zoneSetTemp)
}

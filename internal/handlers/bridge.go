package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"vaillant_bridge/internal/service"

	"github.com/gin-gonic/gin"
)

// Structured error messages of the facade contract. Locally recovered
// conditions keep a 200 status with an {"error": ...} body, matching what
// downstream consumers of the bridge already parse.
const (
	msgZoneNotFound    = "Zone not found"
	msgInvalidMode     = "Invalid mode"
	msgFlowUnavailable = "Flow temperature not available for this zone"
	msgNoSystem        = "No system found"
	msgNoDevices       = "No Devices found in this system."
	msgNoConsumption   = "No consumption data found for this month."

	errBadIndex = "invalid zone index"
	errBadYear  = "invalid year"
	errBadMonth = "invalid month"
	errBadTemp  = "invalid temperature"
)

// respond writes the result, or maps the error: recovered facade conditions
// become 200 {"error": ...}, anything else (auth failure, vendor failure on
// the read path) is a hard 502.
func (h *Handler) respond(c *gin.Context, result any, err error) {
	if err == nil {
		c.JSON(http.StatusOK, result)
		return
	}

	if msg, ok := recoveredMessage(err); ok {
		c.JSON(http.StatusOK, gin.H{"error": msg})
		return
	}

	if h.log != nil {
		h.log.Errorw("vendor operation failed", "err", err, "path", c.FullPath())
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}

// recoveredMessage maps locally recovered service errors onto their wire
// messages.
func recoveredMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, service.ErrZoneNotFound):
		return msgZoneNotFound, true
	case errors.Is(err, service.ErrInvalidMode):
		return msgInvalidMode, true
	case errors.Is(err, service.ErrFlowTemperatureUnavailable):
		return msgFlowUnavailable, true
	case errors.Is(err, service.ErrNoSystem):
		return msgNoSystem, true
	case errors.Is(err, service.ErrNoBoiler):
		return msgNoDevices, true
	case errors.Is(err, service.ErrNoConsumptionData):
		return msgNoConsumption, true
	}
	var ctrlErr *service.ControlError
	if errors.As(err, &ctrlErr) {
		return ctrlErr.Error(), true
	}
	return "", false
}

// intParam parses a required integer path parameter; on failure it writes a
// 400 and reports false.
func (h *Handler) intParam(c *gin.Context, name, errMsg string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return 0, false
	}
	return v, true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) favicon(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// @Summary      Monthly boiler gas consumption
// @Description  Hot-water gas usage of the boiler for one calendar month, in m³.
// @Tags         telemetry
// @Produce      json
// @Param        year   path  int  true  "Year"   example(2026)
// @Param        month  path  int  true  "Month"  example(8)
// @Success      200  {object}  models.Consumption
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /boiler-consumption/{year}/{month} [get]
func (h *Handler) boilerConsumption(c *gin.Context) {
	year, ok := h.intParam(c, "year", errBadYear)
	if !ok {
		return
	}
	month, ok := h.intParam(c, "month", errBadMonth)
	if !ok {
		return
	}
	if month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errBadMonth})
		return
	}
	result, err := h.services.GasConsumption(c.Request.Context(), month, year)
	h.respond(c, result, err)
}

// @Summary      Boiler gas consumption for the current month
// @Tags         telemetry
// @Produce      json
// @Success      200  {object}  models.Consumption
// @Failure      502  {object}  map[string]string
// @Router       /boiler-consumption-current-month [get]
func (h *Handler) boilerConsumptionCurrentMonth(c *gin.Context) {
	now := time.Now()
	result, err := h.services.GasConsumption(c.Request.Context(), int(now.Month()), now.Year())
	h.respond(c, result, err)
}

// @Summary      List zones
// @Tags         telemetry
// @Produce      json
// @Success      200  {object}  models.ZoneList
// @Failure      502  {object}  map[string]string
// @Router       /zones [get]
func (h *Handler) zones(c *gin.Context) {
	result, err := h.services.Zones(c.Request.Context())
	h.respond(c, result, err)
}

// @Summary      Zone details
// @Tags         telemetry
// @Produce      json
// @Param        index  path  int  true  "Zone index (0-based)"
// @Success      200  {object}  models.ZoneDetail
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /zone-info/{index} [get]
func (h *Handler) zoneInfo(c *gin.Context) {
	index, ok := h.intParam(c, "index", errBadIndex)
	if !ok {
		return
	}
	result, err := h.services.ZoneInfo(c.Request.Context(), index)
	h.respond(c, result, err)
}

// @Summary      Zone flow temperature
// @Tags         telemetry
// @Produce      json
// @Param        index  path  int  true  "Zone index (0-based)"
// @Success      200  {object}  models.FlowTemperature
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /zone-flow-temperature/{index} [get]
func (h *Handler) zoneFlowTemperature(c *gin.Context) {
	index, ok := h.intParam(c, "index", errBadIndex)
	if !ok {
		return
	}
	result, err := h.services.ZoneFlowTemperature(c.Request.Context(), index)
	h.respond(c, result, err)
}

// @Summary      Water pressure
// @Tags         telemetry
// @Produce      json
// @Success      200  {object}  models.Pressure
// @Failure      502  {object}  map[string]string
// @Router       /get-water-pressure [get]
func (h *Handler) waterPressure(c *gin.Context) {
	result, err := h.services.WaterPressure(c.Request.Context())
	h.respond(c, result, err)
}

// @Summary      Full system info
// @Description  Versioned projection of the vendor system graph.
// @Tags         telemetry
// @Produce      json
// @Success      200  {object}  models.SystemInfo
// @Failure      502  {object}  map[string]string
// @Router       /get-system-info [get]
func (h *Handler) systemInfo(c *gin.Context) {
	result, err := h.services.SystemInfo(c.Request.Context())
	h.respond(c, result, err)
}

// @Summary      Change zone heating mode
// @Description  Mode is one of manual, off, time_controlled (case-insensitive).
// @Tags         control
// @Produce      json
// @Param        index  path  int     true  "Zone index (0-based)"
// @Param        mode   path  string  true  "Operating mode"  Enums(manual,off,time_controlled)
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /zone-update/{index}/{mode} [get]
func (h *Handler) zoneUpdate(c *gin.Context) {
	index, ok := h.intParam(c, "index", errBadIndex)
	if !ok {
		return
	}
	message, err := h.services.UpdateZoneMode(c.Request.Context(), index, c.Param("mode"))
	h.respond(c, gin.H{"message": message}, err)
}

// @Summary      Set zone target temperature
// @Tags         control
// @Produce      json
// @Param        index  path  int     true  "Zone index (0-based)"
// @Param        temp   path  number  true  "Setpoint in °C"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /zone-set-temp/{index}/{temp} [get]
func (h *Handler) zoneSetTemp(c *gin.Context) {
	index, ok := h.intParam(c, "index", errBadIndex)
	if !ok {
		return
	}
	temp, err := strconv.ParseFloat(c.Param("temp"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errBadTemp})
		return
	}
	message, opErr := h.services.UpdateZoneTemperature(c.Request.Context(), index, temp)
	h.respond(c, gin.H{"message": message}, opErr)
}

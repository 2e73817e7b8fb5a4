package handlers

import (
	"context"

	"vaillant_bridge/internal/models"
	"vaillant_bridge/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockTelemetry struct {
	consumption models.Consumption
	pressure    models.Pressure
	zoneList    models.ZoneList
	zoneDetail  models.ZoneDetail
	flow        models.FlowTemperature
	systemInfo  models.SystemInfo
	err         error

	consumptionCalls int
	lastMonth        int
	lastYear         int
	lastZoneIndex    int
}

func (m *mockTelemetry) GasConsumption(ctx context.Context, month, year int) (models.Consumption, error) {
	m.consumptionCalls++
	m.lastMonth = month
	m.lastYear = year
	return m.consumption, m.err
}

func (m *mockTelemetry) WaterPressure(ctx context.Context) (models.Pressure, error) {
	return m.pressure, m.err
}

func (m *mockTelemetry) Zones(ctx context.Context) (models.ZoneList, error) {
	return m.zoneList, m.err
}

func (m *mockTelemetry) ZoneInfo(ctx context.Context, index int) (models.ZoneDetail, error) {
	m.lastZoneIndex = index
	return m.zoneDetail, m.err
}

func (m *mockTelemetry) ZoneFlowTemperature(ctx context.Context, index int) (models.FlowTemperature, error) {
	m.lastZoneIndex = index
	return m.flow, m.err
}

func (m *mockTelemetry) SystemInfo(ctx context.Context) (models.SystemInfo, error) {
	return m.systemInfo, m.err
}

type mockControl struct {
	message string
	err     error

	modeCalls     int
	setpointCalls int
	lastIndex     int
	lastMode      string
	lastSetpoint  float64
}

func (m *mockControl) UpdateZoneMode(ctx context.Context, index int, mode string) (string, error) {
	m.modeCalls++
	m.lastIndex = index
	m.lastMode = mode
	return m.message, m.err
}

func (m *mockControl) UpdateZoneTemperature(ctx context.Context, index int, temperature float64) (string, error) {
	m.setpointCalls++
	m.lastIndex = index
	m.lastSetpoint = temperature
	return m.message, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

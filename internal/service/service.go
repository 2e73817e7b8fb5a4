package service

import (
	"context"

	"vaillant_bridge/internal/cache"
	"vaillant_bridge/internal/logger"
	"vaillant_bridge/internal/models"
	"vaillant_bridge/internal/vaillant"
)

// Telemetry exposes the cached read operations of the bridge.
type Telemetry interface {
	GasConsumption(ctx context.Context, month, year int) (models.Consumption, error)
	WaterPressure(ctx context.Context) (models.Pressure, error)
	Zones(ctx context.Context) (models.ZoneList, error)
	ZoneInfo(ctx context.Context, index int) (models.ZoneDetail, error)
	ZoneFlowTemperature(ctx context.Context, index int) (models.FlowTemperature, error)
	SystemInfo(ctx context.Context) (models.SystemInfo, error)
}

// Control exposes the write operations. They always go live to the vendor
// and never touch the cache, neither populating nor invalidating it, so a
// cached read may stay stale until its TTL runs out (known limitation).
type Control interface {
	UpdateZoneMode(ctx context.Context, index int, mode string) (string, error)
	UpdateZoneTemperature(ctx context.Context, index int, temperature float64) (string, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Telemetry
	Control
}

// NewService wires the vendor API and the cache into concrete services.
func NewService(api vaillant.API, store *cache.Store, log *logger.Logger) *Service {
	return &Service{
		Telemetry: NewTelemetryService(api, store, log),
		Control:   NewControlService(api, log),
	}
}

// firstSystem authenticates and resolves the account's installation. Exactly
// one system is assumed to exist; only the first returned by the vendor is
// ever consulted.
func firstSystem(ctx context.Context, api vaillant.API) (*vaillant.System, error) {
	if err := api.EnsureAuthenticated(ctx); err != nil {
		return nil, err
	}
	systems, err := api.GetSystems(ctx)
	if err != nil {
		return nil, err
	}
	if len(systems) == 0 {
		return nil, ErrNoSystem
	}
	return &systems[0], nil
}

// zoneAt bounds-checks a positional zone index against the system's zone list.
func zoneAt(system *vaillant.System, index int) (*vaillant.Zone, error) {
	if index < 0 || index >= len(system.Zones) {
		return nil, ErrZoneNotFound
	}
	return &system.Zones[index], nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"vaillant_bridge/internal/cache"
	"vaillant_bridge/internal/logger"
	"vaillant_bridge/internal/models"
	"vaillant_bridge/internal/vaillant"
)

// TTLs per data kind. Slowly changing data (zone identity/config) is cached
// long, live readings short; monthly consumption is derived from a monthly
// bucket that rarely changes mid-month, hence the four hours.
const (
	systemInfoTTL      = 5 * time.Minute
	zoneInfoTTL        = 30 * time.Minute
	consumptionTTL     = 4 * time.Hour
	pressureTTL        = 5 * time.Minute
	zoneListTTL        = 5 * time.Minute
	flowTemperatureTTL = 5 * time.Minute
)

// consumptionScale converts the raw vendor bucket value to cubic meters.
const consumptionScale = 10000

// Cache keys. Parameterized keys are deterministic in their inputs.
const (
	keySystemInfo = "system-info"
	keyPressure   = "water-pressure"
	keyZoneList   = "zone-list"
)

func consumptionKey(month, year int) string { return fmt.Sprintf("gas-consumption:%04d-%02d", year, month) }
func zoneInfoKey(index int) string          { return fmt.Sprintf("zone-info:%d", index) }
func flowTemperatureKey(index int) string   { return fmt.Sprintf("flow-temperature:%d", index) }

// TelemetryService serves the read operations: cache check first, then
// authenticate, query the vendor, shape a minimal result and populate the
// cache. Only successful fetches are cached; no partial values.
type TelemetryService struct {
	api   vaillant.API
	cache *cache.Store
	log   *logger.Logger
}

func NewTelemetryService(api vaillant.API, store *cache.Store, log *logger.Logger) *TelemetryService {
	return &TelemetryService{api: api, cache: store, log: log}
}

// GasConsumption returns the boiler's hot-water gas usage for one calendar
// month, in cubic meters.
func (s *TelemetryService) GasConsumption(ctx context.Context, month, year int) (models.Consumption, error) {
	key := consumptionKey(month, year)
	if v, ok := s.cache.Get(key); ok {
		return v.(models.Consumption), nil
	}
	s.log.Infow("fetching gas consumption", "year", year, "month", month)

	system, err := firstSystem(ctx, s.api)
	if err != nil {
		return models.Consumption{}, err
	}
	boiler := findBoiler(system)
	if boiler == nil {
		return models.Consumption{}, ErrNoBoiler
	}

	start, end := monthWindow(month, year)
	series, err := s.api.GetDeviceBuckets(ctx, system.SystemID, boiler.DeviceUUID, vaillant.ResolutionMonth, start, end)
	if err != nil {
		return models.Consumption{}, err
	}

	for _, data := range series {
		if data.OperationMode != vaillant.OperationModeDomesticHotWater ||
			data.EnergyType != vaillant.EnergyTypeConsumedPrimary {
			continue
		}
		for _, bucket := range data.Data {
			out := models.Consumption{ConsumptionM3: bucket.Value / consumptionScale}
			s.cache.Set(key, out, consumptionTTL)
			return out, nil
		}
	}
	return models.Consumption{}, ErrNoConsumptionData
}

// WaterPressure returns the system's current water pressure.
func (s *TelemetryService) WaterPressure(ctx context.Context) (models.Pressure, error) {
	if v, ok := s.cache.Get(keyPressure); ok {
		return v.(models.Pressure), nil
	}
	s.log.Infow("fetching water pressure")

	system, err := firstSystem(ctx, s.api)
	if err != nil {
		return models.Pressure{}, err
	}
	out := models.Pressure{Pressure: system.WaterPressure}
	s.cache.Set(keyPressure, out, pressureTTL)
	return out, nil
}

// Zones enumerates the system's zones in vendor order, 0-based.
func (s *TelemetryService) Zones(ctx context.Context) (models.ZoneList, error) {
	if v, ok := s.cache.Get(keyZoneList); ok {
		return v.(models.ZoneList), nil
	}
	s.log.Infow("fetching zones")

	system, err := firstSystem(ctx, s.api)
	if err != nil {
		return models.ZoneList{}, err
	}
	zones := make([]models.ZoneSummary, 0, len(system.Zones))
	for i, z := range system.Zones {
		zones = append(zones, models.ZoneSummary{Index: i, Name: z.Name})
	}
	out := models.ZoneList{Zones: zones}
	s.cache.Set(keyZoneList, out, zoneListTTL)
	return out, nil
}

// ZoneInfo returns the telemetry of one zone by positional index.
func (s *TelemetryService) ZoneInfo(ctx context.Context, index int) (models.ZoneDetail, error) {
	key := zoneInfoKey(index)
	if v, ok := s.cache.Get(key); ok {
		return v.(models.ZoneDetail), nil
	}
	s.log.Infow("fetching zone info", "index", index)

	system, err := firstSystem(ctx, s.api)
	if err != nil {
		return models.ZoneDetail{}, err
	}
	zone, err := zoneAt(system, index)
	if err != nil {
		return models.ZoneDetail{}, err
	}
	out := models.ZoneDetail{
		Index:              index,
		Name:               zone.Name,
		CurrentTemperature: zone.CurrentRoomTemperature,
		DesiredTemperature: zone.DesiredRoomTemperatureSetpoint,
		HeatingState:       zone.Heating.OperationModeHeating,
	}
	s.cache.Set(key, out, zoneInfoTTL)
	return out, nil
}

// ZoneFlowTemperature returns the current flow temperature of the circuit
// serving the zone. A zone whose circuit reports no reading is distinct
// from an unknown zone.
func (s *TelemetryService) ZoneFlowTemperature(ctx context.Context, index int) (models.FlowTemperature, error) {
	key := flowTemperatureKey(index)
	if v, ok := s.cache.Get(key); ok {
		return v.(models.FlowTemperature), nil
	}
	s.log.Infow("fetching flow temperature", "index", index)

	system, err := firstSystem(ctx, s.api)
	if err != nil {
		return models.FlowTemperature{}, err
	}
	zone, err := zoneAt(system, index)
	if err != nil {
		return models.FlowTemperature{}, err
	}
	circuit := findCircuit(system, zone.AssociatedCircuitIndex)
	if circuit == nil || circuit.CurrentCircuitFlowTemperature == nil {
		return models.FlowTemperature{}, ErrFlowTemperatureUnavailable
	}
	out := models.FlowTemperature{FlowTemperature: *circuit.CurrentCircuitFlowTemperature}
	s.cache.Set(key, out, flowTemperatureTTL)
	return out, nil
}

// SystemInfo returns the fixed projection of the whole installation.
func (s *TelemetryService) SystemInfo(ctx context.Context) (models.SystemInfo, error) {
	if v, ok := s.cache.Get(keySystemInfo); ok {
		return v.(models.SystemInfo), nil
	}
	s.log.Infow("fetching system info")

	system, err := firstSystem(ctx, s.api)
	if err != nil {
		return models.SystemInfo{}, err
	}
	out := projectSystemInfo(system)
	s.cache.Set(keySystemInfo, out, systemInfoTTL)
	return out, nil
}

// monthWindow is the calendar-month window [first instant, last second] of
// the given month. December rolls the end boundary into January of the
// following year.
func monthWindow(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

func findBoiler(system *vaillant.System) *vaillant.Device {
	for i := range system.Devices {
		if system.Devices[i].Type == vaillant.DeviceTypeBoiler {
			return &system.Devices[i]
		}
	}
	return nil
}

func findCircuit(system *vaillant.System, index int) *vaillant.Circuit {
	for i := range system.Circuits {
		if system.Circuits[i].Index == index {
			return &system.Circuits[i]
		}
	}
	return nil
}

// projectSystemInfo maps the vendor graph onto the versioned SystemInfo
// shape. Fields are copied explicitly: the projection, not the vendor
// schema, is the contract with downstream consumers.
func projectSystemInfo(system *vaillant.System) models.SystemInfo {
	info := models.SystemInfo{
		SystemID:          system.SystemID,
		ControlIdentifier: system.ControlIdentifier,
		TimeZone:          system.TimeZone,
		WaterPressure:     system.WaterPressure,
		ConnectedAt:       system.ConnectedAt,
	}
	for _, d := range system.Devices {
		info.Devices = append(info.Devices, models.DeviceInfo{
			DeviceUUID:     d.DeviceUUID,
			SerialNumber:   d.SerialNumber,
			Type:           d.Type,
			ProductName:    d.ProductName,
			CommissionedAt: d.CommissionedAt,
		})
	}
	for i, z := range system.Zones {
		info.Zones = append(info.Zones, models.ZoneDetail{
			Index:              i,
			Name:               z.Name,
			CurrentTemperature: z.CurrentRoomTemperature,
			DesiredTemperature: z.DesiredRoomTemperatureSetpoint,
			HeatingState:       z.Heating.OperationModeHeating,
		})
	}
	for _, c := range system.Circuits {
		info.Circuits = append(info.Circuits, models.CircuitInfo{
			Index:                  c.Index,
			CurrentFlowTemperature: c.CurrentCircuitFlowTemperature,
			HeatingCurve:           c.HeatingCurve,
		})
	}
	for _, d := range system.DomesticHotWater {
		info.DomesticHotWater = append(info.DomesticHotWater, models.DomesticHotWater{
			Index:              d.Index,
			CurrentTemperature: d.CurrentDhwTemperature,
			TappingSetpoint:    d.TappingSetpoint,
			OperationMode:      d.OperationModeDhw,
		})
	}
	return info
}

package service

import (
	"context"
	"fmt"
	"strings"

	"vaillant_bridge/internal/logger"
	"vaillant_bridge/internal/vaillant"
)

// zoneOperatingModes maps the bridge's lowercase mode names onto the
// vendor's enumeration.
var zoneOperatingModes = map[string]string{
	"manual":          vaillant.OperatingModeManual,
	"off":             vaillant.OperatingModeOff,
	"time_controlled": vaillant.OperatingModeTimeControlled,
}

// ControlService issues zone state changes. Writes bypass the cache in both
// directions: nothing is stored and nothing is invalidated.
type ControlService struct {
	api vaillant.API
	log *logger.Logger
}

func NewControlService(api vaillant.API, log *logger.Logger) *ControlService {
	return &ControlService{api: api, log: log}
}

// UpdateZoneMode sets the heating operating mode of a zone. The mode string
// is matched case-insensitively against manual/off/time_controlled; an
// unrecognized mode fails before any vendor traffic.
func (s *ControlService) UpdateZoneMode(ctx context.Context, index int, mode string) (string, error) {
	vendorMode, ok := zoneOperatingModes[strings.ToLower(mode)]
	if !ok {
		s.log.Errorw("invalid zone mode", "mode", mode)
		return "", ErrInvalidMode
	}

	system, err := firstSystem(ctx, s.api)
	if err != nil {
		return "", err
	}
	zone, err := zoneAt(system, index)
	if err != nil {
		return "", err
	}

	if err := s.api.SetZoneOperatingMode(ctx, system.SystemID, zone.Index, vendorMode); err != nil {
		s.log.Errorw("zone mode update failed", "zone", zone.Name, "err", err)
		return "", &ControlError{Zone: zone.Name, Op: "update mode", Err: err}
	}
	s.log.Debugw("zone mode updated", "zone", zone.Name, "mode", vendorMode)
	return fmt.Sprintf("Zone %s mode set to %s", zone.Name, mode), nil
}

// UpdateZoneTemperature sets the manual-mode heating setpoint of a zone.
func (s *ControlService) UpdateZoneTemperature(ctx context.Context, index int, temperature float64) (string, error) {
	system, err := firstSystem(ctx, s.api)
	if err != nil {
		return "", err
	}
	zone, err := zoneAt(system, index)
	if err != nil {
		return "", err
	}

	if err := s.api.SetZoneHeatingSetpoint(ctx, system.SystemID, zone.Index, temperature); err != nil {
		s.log.Errorw("zone setpoint update failed", "zone", zone.Name, "err", err)
		return "", &ControlError{Zone: zone.Name, Op: "set temperature", Err: err}
	}
	s.log.Debugw("zone setpoint updated", "zone", zone.Name, "temperature", temperature)
	return fmt.Sprintf("Temperature for zone %s set to %.1f°C", zone.Name, temperature), nil
}

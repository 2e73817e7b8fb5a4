package service

import (
	"errors"
	"fmt"
)

// Locally recovered conditions. The HTTP layer converts these into a
// structured {"error": ...} body instead of a failure status; they never
// abort the process and are never retried.
var (
	ErrNoSystem                   = errors.New("no system found")
	ErrZoneNotFound               = errors.New("zone not found")
	ErrInvalidMode                = errors.New("invalid mode")
	ErrNoBoiler                   = errors.New("no boiler device found in this system")
	ErrNoConsumptionData          = errors.New("no consumption data for this period")
	ErrFlowTemperatureUnavailable = errors.New("flow temperature not available for this zone")
)

// ControlError captures a vendor-side rejection or transport failure of a
// control (write) operation, keeping the underlying failure text for the
// response body.
type ControlError struct {
	Zone string // zone name
	Op   string // "update mode" or "set temperature"
	Err  error
}

func (e *ControlError) Error() string {
	return fmt.Sprintf("failed to %s for zone %s: %v", e.Op, e.Zone, e.Err)
}

func (e *ControlError) Unwrap() error { return e.Err }

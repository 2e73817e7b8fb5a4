package models

import "time"

// SystemInfo is a fixed projection of the vendor's system object graph.
// The field set is explicit: downstream consumers depend on
// this shape, so it is versioned here rather than derived from whatever the
// vendor schema happens to contain. Timestamps marshal as ISO-8601 (RFC 3339)
// and the timezone as its canonical name.
type SystemInfo struct {
	SystemID          string             `json:"system_id"`
	ControlIdentifier string             `json:"control_identifier"`
	TimeZone          string             `json:"time_zone"`
	WaterPressure     float64            `json:"water_pressure"`
	ConnectedAt       time.Time          `json:"connected_at"`
	Devices           []DeviceInfo       `json:"devices"`
	Zones             []ZoneDetail       `json:"zones"`
	Circuits          []CircuitInfo      `json:"circuits"`
	DomesticHotWater  []DomesticHotWater `json:"domestic_hot_water"`
}

// DeviceInfo describes one physical device of the installation.
type DeviceInfo struct {
	DeviceUUID     string    `json:"device_uuid"`
	SerialNumber   string    `json:"serial_number"`
	Type           string    `json:"type"` // e.g. BOILER, CONTROL
	ProductName    string    `json:"product_name"`
	CommissionedAt time.Time `json:"commissioned_at"`
}

// CircuitInfo describes one heating circuit.
type CircuitInfo struct {
	Index                  int      `json:"index"`
	CurrentFlowTemperature *float64 `json:"current_flow_temperature"`
	HeatingCurve           *float64 `json:"heating_curve"`
}

// DomesticHotWater describes one hot-water tank.
type DomesticHotWater struct {
	Index              int     `json:"index"`
	CurrentTemperature float64 `json:"current_temperature"`
	TappingSetpoint    float64 `json:"tapping_setpoint"`
	OperationMode      string  `json:"operation_mode"`
}

package models

// Consumption is the gas usage for one calendar month, in cubic meters.
type Consumption struct {
	ConsumptionM3 float64 `json:"consumption_m3"`
}

// Pressure is the system's current water pressure in bar.
type Pressure struct {
	Pressure float64 `json:"pressure"`
}

// ZoneSummary identifies a heating zone by its position in the vendor's zone
// list. The index is positional, not a stable ID: if the vendor reorders
// zones, the same index addresses a different zone.
type ZoneSummary struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// ZoneList is the enumeration of all zones of the system, in vendor order.
type ZoneList struct {
	Zones []ZoneSummary `json:"zones"`
}

// ZoneDetail is the telemetry snapshot of a single zone.
type ZoneDetail struct {
	Index              int      `json:"index"`
	Name               string   `json:"name"`
	CurrentTemperature *float64 `json:"current_temperature"`
	DesiredTemperature float64  `json:"desired_temperature"`
	HeatingState       string   `json:"heating_state"` // MANUAL | OFF | TIME_CONTROLLED
}

// FlowTemperature is the current flow temperature of the circuit serving a zone.
type FlowTemperature struct {
	FlowTemperature float64 `json:"flow_temperature"`
}

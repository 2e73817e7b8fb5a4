package vaillant

import "time"

// Device types reported by the vendor.
const (
	DeviceTypeBoiler = "BOILER"
)

// Zone heating operating modes accepted by the vendor.
const (
	OperatingModeManual         = "MANUAL"
	OperatingModeOff            = "OFF"
	OperatingModeTimeControlled = "TIME_CONTROLLED"
)

// Bucket resolutions for energy-usage queries.
const (
	ResolutionMonth = "MONTH"
)

// Bucket dimensions used when filtering consumption data.
const (
	OperationModeDomesticHotWater = "DOMESTIC_HOT_WATER"
	EnergyTypeConsumedPrimary     = "CONSUMED_PRIMARY_ENERGY"
)

// System is the vendor's top-level aggregate for one installation.
type System struct {
	SystemID          string             `json:"systemId"`
	ControlIdentifier string             `json:"controlIdentifier"`
	TimeZone          string             `json:"timeZone"`
	ConnectedAt       time.Time          `json:"connectedAt"`
	WaterPressure     float64            `json:"waterPressure"` // bar
	Devices           []Device           `json:"devices"`
	Zones             []Zone             `json:"zones"`
	Circuits          []Circuit          `json:"circuits"`
	DomesticHotWater  []DomesticHotWater `json:"domesticHotWater"`
}

// Device is one physical appliance of the installation.
type Device struct {
	DeviceUUID     string    `json:"deviceUuid"`
	SerialNumber   string    `json:"serialNumber"`
	Type           string    `json:"type"`
	ProductName    string    `json:"productName"`
	CommissionedAt time.Time `json:"commissionedAt"`
}

// Zone is a controllable heating area. Its index is positional within the
// system's zone list.
type Zone struct {
	Index                          int         `json:"index"`
	Name                           string      `json:"name"`
	CurrentRoomTemperature         *float64    `json:"currentRoomTemperature"`
	DesiredRoomTemperatureSetpoint float64     `json:"desiredRoomTemperatureSetpoint"`
	AssociatedCircuitIndex         int         `json:"associatedCircuitIndex"`
	Heating                        ZoneHeating `json:"heating"`
}

// ZoneHeating carries the heating-specific configuration of a zone.
type ZoneHeating struct {
	OperationModeHeating      string  `json:"operationModeHeating"`
	ManualModeSetpointHeating float64 `json:"manualModeSetpointHeating"`
}

// Circuit is a hydraulic circuit; zones reference circuits by index.
type Circuit struct {
	Index                         int      `json:"index"`
	CurrentCircuitFlowTemperature *float64 `json:"currentCircuitFlowTemperature"`
	HeatingCurve                  *float64 `json:"heatingCurve"`
}

// DomesticHotWater is one hot-water tank of the installation.
type DomesticHotWater struct {
	Index                 int     `json:"index"`
	CurrentDhwTemperature float64 `json:"currentDhwTemperature"`
	TappingSetpoint       float64 `json:"tappingSetpoint"`
	OperationModeDhw      string  `json:"operationModeDhw"`
}

// DeviceData is one energy-usage series of a device: buckets of one energy
// type, recorded under one operation mode, at one resolution.
type DeviceData struct {
	OperationMode string       `json:"operationMode"`
	EnergyType    string       `json:"energyType"`
	Resolution    string       `json:"resolution"`
	Data          []DataBucket `json:"data"`
}

// DataBucket is a single aggregated measurement window.
type DataBucket struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Value     float64   `json:"value"` // raw vendor units
}

// tokenResponse is the identity provider's answer to login and refresh.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"` // seconds
	TokenType    string `json:"token_type"`
}

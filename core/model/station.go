package model

// StationStatus is the normalized operational state of a charging station.
type StationStatus string

const (
	StatusAvailable StationStatus = "available"
	StatusBusy      StationStatus = "busy"
	StatusOffline   StationStatus = "offline"
)

// ChargingStation is the internal representation of a charging location,
// normalized from a provider record.
type ChargingStation struct {
	ID                         string        `json:"id"`
	Name                       string        `json:"name"`
	Location                   GeoPoint      `json:"location"`
	Network                    string        `json:"network"`
	ConnectorTypes             []string      `json:"connectorTypes"`
	DCFastCount                int           `json:"dcFastCount"`
	Level2Count                int           `json:"level2Count"`
	Pricing                    string        `json:"pricing"`
	AccessCode                 string        `json:"accessCode"`
	Hours                      string        `json:"hours"`
	FacilityType               string        `json:"facilityType"`
	Status                     StationStatus `json:"status"`
	DistanceFromQueryMiles     float64       `json:"distanceFromQueryMiles"`
	ChargingSpeedClass         string        `json:"chargingSpeedClass"`
	EstimatedChargeTimeMinutes int           `json:"estimatedChargeTimeMinutes"`
	Amenities                  []string      `json:"amenities"`
}

// RawStationRecord mirrors the wire format of the external station provider.
// Field names follow the provider's JSON; only the fields the formatter
// consumes are decoded.
type RawStationRecord struct {
	ID             int      `json:"id"`
	StationName    string   `json:"station_name"`
	StreetAddress  string   `json:"street_address"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	Network        string   `json:"ev_network"`
	ConnectorTypes []string `json:"ev_connector_types"`
	DCFastCount    int      `json:"ev_dc_fast_num"`
	Level2Count    int      `json:"ev_level2_evse_num"`
	Pricing        string   `json:"ev_pricing"`
	AccessCode     string   `json:"access_code"`
	AccessDaysTime string   `json:"access_days_time"`
	FacilityType   string   `json:"facility_type"`
	StatusCode     string   `json:"status_code"`
	// DistanceMiles is the provider-computed distance from the query
	// point. Zero when the provider omits it.
	DistanceMiles float64 `json:"distance"`
}

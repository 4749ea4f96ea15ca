package models

// TouringLocation is a trip endpoint. Coordinates are optional; a name-only
// location is geocoded server side.
type TouringLocation struct {
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}

// TouringPlanRequest is the body for POST /v1/touring/plan.
type TouringPlanRequest struct {
	FromLocation  TouringLocation `json:"from_location" validate:"required"`
	ToLocation    TouringLocation `json:"to_location" validate:"required"`
	TravelDayISO  string          `json:"travel_day_iso" validate:"required"`
	MaxDriveHours *float64        `json:"max_drive_hours,omitempty" validate:"omitempty,gt=0"`
}

// TouringDaySummary is the travel-day outlook at one endpoint.
type TouringDaySummary struct {
	Date           string  `json:"date"`
	RainMm         float64 `json:"rain_mm"`
	WindAvgKmh     float64 `json:"wind_avg_kmh"`
	WindGustKmh    float64 `json:"wind_gust_kmh"`
	TowingStress   int     `json:"towing_stress"`
	OvernightTempC float64 `json:"overnight_temp_c"`
	AISummary      string  `json:"ai_summary"`
	ParkUpFlag     bool    `json:"park_up_flag"`
}

// LocationSummary pairs a resolved endpoint with its day outlook.
type LocationSummary struct {
	Location Location          `json:"location"`
	Day      TouringDaySummary `json:"day"`
}

// RouteLegInfo is the drive-leg estimate for the main leg.
type RouteLegInfo struct {
	DistanceKm         float64  `json:"distance_km"`
	DriveHoursEstimate float64  `json:"drive_hours_estimate"`
	MaxDriveHours      *float64 `json:"max_drive_hours,omitempty"`
	WithinDriveLimit   *bool    `json:"within_drive_limit,omitempty"`
	// Estimated marks a straight-line fallback produced because the
	// directions provider failed.
	Estimated bool `json:"estimated,omitempty"`
}

// RouteWindProfile reports the worst wind sample along the leg.
type RouteWindProfile struct {
	Samples            int     `json:"samples"`
	WorstAtKmFromStart float64 `json:"worst_at_km_from_start"`
	WorstWindAvgKmh    float64 `json:"worst_wind_avg_kmh"`
	WorstWindGustKmh   float64 `json:"worst_wind_gust_kmh"`
	WorstTowingStress  int     `json:"worst_towing_stress"`
	Note               string  `json:"note"`
}

// RouteAlternative is one ranked alternative stop.
type RouteAlternative struct {
	Name               string  `json:"name"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	DriveHoursEstimate float64 `json:"drive_hours_estimate"`
	TowingStress       int     `json:"towing_stress"`
	Note               string  `json:"note,omitempty"`
}

// Comparison says which endpoint is the calmer towing prospect.
type Comparison struct {
	BetterForTowing string `json:"better_for_towing"`
	Reason          string `json:"reason"`
}

// TouringPlanResponse is the body for POST /v1/touring/plan.
type TouringPlanResponse struct {
	TravelDayISO      string             `json:"travel_day_iso"`
	TravelDayHuman    string             `json:"travel_day_human"`
	MainLeg           RouteLegInfo       `json:"main_leg"`
	FromSummary       LocationSummary    `json:"from_summary"`
	ToSummary         LocationSummary    `json:"to_summary"`
	RouteTowingStress int                `json:"route_towing_stress"`
	ComfortLabel      string             `json:"comfort_label"`
	Comparison        Comparison         `json:"comparison"`
	Recommendation    string             `json:"recommendation"`
	RouteWindProfile  *RouteWindProfile  `json:"route_wind_profile,omitempty"`
	Alternatives      []RouteAlternative `json:"alternatives"`
}

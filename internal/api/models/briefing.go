// Package models defines the request and response bodies for the
// TouringBrain API, plus the RFC7807 Problem type.
package models

// Location is a named point with required coordinates.
type Location struct {
	Name      string  `json:"name" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// DailyBriefingRequest is the body for POST /v1/briefing/daily.
type DailyBriefingRequest struct {
	Location Location `json:"location" validate:"required"`
	// Days is clamped to 1-7 server side; 0 means the default of 3.
	Days int `json:"days" validate:"min=0,max=31"`
}

// DailyBriefingDay is one day of the briefing response.
type DailyBriefingDay struct {
	Date           string  `json:"date"`
	RainMm         float64 `json:"rain_mm"`
	WindAvgKmh     float64 `json:"wind_avg_kmh"`
	WindAvgKnots   float64 `json:"wind_avg_knots"`
	WindGustKmh    float64 `json:"wind_gust_kmh"`
	WindGustKnots  float64 `json:"wind_gust_knots"`
	OvernightTempC float64 `json:"overnight_temp_c"`
	TowingStress   int     `json:"towing_stress"`
	ComfortLabel   string  `json:"comfort_label"`
	AISummary      string  `json:"ai_summary"`
}

// DailyBriefingResponse is the body for POST /v1/briefing/daily.
type DailyBriefingResponse struct {
	Location       Location           `json:"location"`
	Days           []DailyBriefingDay `json:"days"`
	Headline       string             `json:"headline"`
	Recommendation string             `json:"recommendation"`
}

package models

// CaravanScoreRequest is the body for POST /v1/caravan/score.
type CaravanScoreRequest struct {
	Location     Location  `json:"location" validate:"required"`
	HomeLocation *Location `json:"home_location,omitempty"`
}

// CaravanDayForecast is one scored day in the caravan response.
type CaravanDayForecast struct {
	Date           string  `json:"date"`
	RainMm         float64 `json:"rain_mm"`
	WindAvgKmh     float64 `json:"wind_avg_kmh"`
	WindAvgKnots   float64 `json:"wind_avg_knots"`
	WindGustKmh    float64 `json:"wind_gust_kmh"`
	WindGustKnots  float64 `json:"wind_gust_knots"`
	TowingStress   int     `json:"towing_stress"`
	OvernightTempC float64 `json:"overnight_temp_c"`
	AISummary      string  `json:"ai_summary"`
}

// CaravanScoreResponse is the body for POST /v1/caravan/score.
type CaravanScoreResponse struct {
	Location       Location             `json:"location"`
	Days           []CaravanDayForecast `json:"days"`
	Recommendation string               `json:"recommendation"`
}

// CaravanInfo is one caravan reference record in lookup responses.
type CaravanInfo struct {
	CaravanID               string   `json:"caravan_id"`
	Brand                   string   `json:"brand"`
	Model                   string   `json:"model"`
	Variant                 *string  `json:"variant"`
	LengthCategory          *string  `json:"length_category"`
	CountryRegion           *string  `json:"country_region"`
	ATMKg                   *float64 `json:"atm_kg"`
	TareKg                  *float64 `json:"tare_kg"`
	AxleRatingKg            *float64 `json:"axle_rating_kg"`
	BallWeightEmptyKg       *float64 `json:"ball_weight_empty_kg"`
	TypicalBallLoadedPctMin *float64 `json:"typical_ball_loaded_pct_min"`
	TypicalBallLoadedPctMax *float64 `json:"typical_ball_loaded_pct_max"`
	Confidence              string   `json:"confidence"`
	Notes                   *string  `json:"notes"`
}

// CaravanLookupResponse is the body for GET /v1/caravan/lookup.
type CaravanLookupResponse struct {
	Matches []CaravanInfo `json:"matches"`
	Message string        `json:"message"`
}

package models

// VehicleInfo is one tow vehicle reference record in lookup responses.
type VehicleInfo struct {
	VehicleID             string  `json:"vehicle_id"`
	Make                  string  `json:"make"`
	Model                 string  `json:"model"`
	YearRange             string  `json:"year_range"`
	Variant               string  `json:"variant"`
	CountryRegion         *string `json:"country_region"`
	BrakedTowCapacityKg   *int    `json:"braked_tow_capacity_kg"`
	UnbrakedTowCapacityKg *int    `json:"unbraked_tow_capacity_kg"`
	MaxBallWeightKg       *int    `json:"max_ball_weight_kg"`
	GVMKg                 *int    `json:"gvm_kg"`
	GCMKg                 *int    `json:"gcm_kg"`
	Confidence            string  `json:"confidence"`
	Notes                 string  `json:"notes"`
}

// VehicleLookupResponse is the body for GET /v1/vehicle/lookup.
type VehicleLookupResponse struct {
	Matches []VehicleInfo `json:"matches"`
	Message string        `json:"message"`
}

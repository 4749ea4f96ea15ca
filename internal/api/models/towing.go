package models

// VehicleInput is the tow vehicle block supplied by the user or a lookup.
type VehicleInput struct {
	Label             string   `json:"label" validate:"required"`
	TowRatingBrakedKg *float64 `json:"tow_rating_braked_kg,omitempty" validate:"omitempty,gt=0"`
	MaxBallWeightKg   *float64 `json:"max_ball_weight_kg,omitempty" validate:"omitempty,gt=0"`
	Notes             *string  `json:"notes,omitempty"`
}

// CaravanInput is the caravan / trailer block.
type CaravanInput struct {
	Label            string   `json:"label" validate:"required"`
	ATMKg            *float64 `json:"atm_kg,omitempty" validate:"omitempty,gt=0"`
	LoadedEstimateKg *float64 `json:"loaded_estimate_kg,omitempty" validate:"omitempty,gt=0"`
	BallWeightKg     *float64 `json:"ball_weight_kg,omitempty" validate:"omitempty,gt=0"`
	AxleRatingKg     *float64 `json:"axle_rating_kg,omitempty" validate:"omitempty,gt=0"`
}

// MotorhomeInput is the motorhome / campervan block.
type MotorhomeInput struct {
	Label             string   `json:"label" validate:"required"`
	GVMKg             *float64 `json:"gvm_kg,omitempty" validate:"omitempty,gt=0"`
	CurrentWeightKg   *float64 `json:"current_weight_kg,omitempty" validate:"omitempty,gt=0"`
	FrontAxleRatingKg *float64 `json:"front_axle_rating_kg,omitempty" validate:"omitempty,gt=0"`
	RearAxleRatingKg  *float64 `json:"rear_axle_rating_kg,omitempty" validate:"omitempty,gt=0"`
	FrontAxleActualKg *float64 `json:"front_axle_actual_kg,omitempty" validate:"omitempty,gt=0"`
	RearAxleActualKg  *float64 `json:"rear_axle_actual_kg,omitempty" validate:"omitempty,gt=0"`
	RearOverhangM     *float64 `json:"rear_overhang_m,omitempty" validate:"omitempty,gt=0"`
}

// ExtrasInput captures additional load information that affects stability.
type ExtrasInput struct {
	RearLoadKg           *float64 `json:"rear_load_kg,omitempty" validate:"omitempty,min=0"`
	NumEbikes            *int     `json:"num_ebikes,omitempty" validate:"omitempty,min=0"`
	FrontStorageHeavy    *bool    `json:"front_storage_heavy,omitempty"`
	WaterFrontTankLitres *float64 `json:"water_front_tank_litres,omitempty" validate:"omitempty,min=0"`
	WaterRearTankLitres  *float64 `json:"water_rear_tank_litres,omitempty" validate:"omitempty,min=0"`
	Notes                *string  `json:"notes,omitempty"`
}

// TowingAdvisorRequest is the body for POST /v1/towing/evaluate.
type TowingAdvisorRequest struct {
	RigType string `json:"rig_type" validate:"required,oneof=towed_caravan motorhome campervan"`

	Vehicle   *VehicleInput   `json:"vehicle,omitempty"`
	Caravan   *CaravanInput   `json:"caravan,omitempty"`
	Motorhome *MotorhomeInput `json:"motorhome,omitempty"`
	Extras    *ExtrasInput    `json:"extras,omitempty"`

	// Optional vehicle lookup hints
	UseVehicleLookup bool    `json:"use_vehicle_lookup,omitempty"`
	VehicleMake      string  `json:"vehicle_make,omitempty"`
	VehicleModel     string  `json:"vehicle_model,omitempty"`
	VehicleYear      *int    `json:"vehicle_year,omitempty"`
	VehicleVariant   string  `json:"vehicle_variant,omitempty"`

	// Optional caravan lookup hints
	UseCaravanLookup      bool   `json:"use_caravan_lookup,omitempty"`
	CaravanBrand          string `json:"caravan_brand,omitempty"`
	CaravanModel          string `json:"caravan_model,omitempty"`
	CaravanLengthCategory string `json:"caravan_length_category,omitempty"`
}

// TowingCheck is one evaluated loading aspect.
type TowingCheck struct {
	Item   string `json:"item"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// AdviceBlock is the plain-language guidance block.
type AdviceBlock struct {
	Summary  string   `json:"summary"`
	Detailed []string `json:"detailed"`
}

// TowingAdvisorResponse is the body for POST /v1/towing/evaluate.
type TowingAdvisorResponse struct {
	Status                string                 `json:"status"`
	RiskColour            string                 `json:"risk_colour"`
	BallWeightPctOfATM    *float64               `json:"ball_weight_percent_of_atm"`
	BallWeightPctOfLoaded *float64               `json:"ball_weight_percent_of_loaded"`
	Checks                []TowingCheck          `json:"checks"`
	Advice                AdviceBlock            `json:"advice"`
	InputsEcho            map[string]interface{} `json:"inputs_echo"`
	Disclaimer            string                 `json:"disclaimer"`
}

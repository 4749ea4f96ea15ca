// Package towing evaluates a rig's loading against common towing guidance
// and produces per-item checks, an overall verdict and plain-language
// advice. It is deliberately conservative: absent numbers degrade a check
// to unknown rather than failing the evaluation.
package towing

import "errors"

// Rig types accepted by Evaluate.
const (
	RigTowedCaravan = "towed_caravan"
	RigMotorhome    = "motorhome"
	RigCampervan    = "campervan"
)

// Input errors.
var (
	// ErrMissingRigBlocks indicates the towed_caravan rig is missing its
	// vehicle or caravan block after any lookup fill.
	ErrMissingRigBlocks = errors.New("for 'towed_caravan' you must provide both 'vehicle' and 'caravan' blocks, or use the lookup hints so TouringBrain can fill them")
	// ErrMissingMotorhomeBlock indicates a motorhome/campervan rig without
	// a motorhome block.
	ErrMissingMotorhomeBlock = errors.New("you must provide a 'motorhome' block for this rig type")
	// ErrUnsupportedRigType indicates an unrecognised rig_type value.
	ErrUnsupportedRigType = errors.New("unsupported rig_type; use 'towed_caravan', 'motorhome' or 'campervan'")
)

// CheckStatus is the outcome of a single check.
type CheckStatus string

// Per-check statuses.
const (
	CheckOK        CheckStatus = "ok"
	CheckNearLimit CheckStatus = "near_limit"
	CheckOverLimit CheckStatus = "over_limit"
	CheckUnknown   CheckStatus = "unknown"
)

// OverallStatus is the rolled-up verdict across all checks.
type OverallStatus string

// Overall verdicts.
const (
	StatusOK         OverallStatus = "ok"
	StatusNearLimits OverallStatus = "near_limits"
	StatusOverLimits OverallStatus = "over_limits"
	StatusUnknown    OverallStatus = "unknown"
)

// RiskColour is the traffic-light colour paired with an overall status.
type RiskColour string

// Risk colours.
const (
	ColourGreen RiskColour = "green"
	ColourAmber RiskColour = "amber"
	ColourRed   RiskColour = "red"
	ColourGrey  RiskColour = "grey"
)

// Check is one evaluated loading aspect.
type Check struct {
	Item   string
	Status CheckStatus
	Detail string
}

// Advice is the plain-language guidance block.
type Advice struct {
	Summary  string
	Detailed []string
}

// Vehicle describes the tow vehicle. All limits are optional.
type Vehicle struct {
	Label             string
	TowRatingBrakedKg *float64
	MaxBallWeightKg   *float64
	Notes             string
}

// Caravan describes the towed caravan or trailer.
type Caravan struct {
	Label            string
	ATMKg            *float64
	LoadedEstimateKg *float64
	BallWeightKg     *float64
	AxleRatingKg     *float64
}

// Motorhome describes a motorhome or campervan.
type Motorhome struct {
	Label             string
	GVMKg             *float64
	CurrentWeightKg   *float64
	FrontAxleRatingKg *float64
	RearAxleRatingKg  *float64
	FrontAxleActualKg *float64
	RearAxleActualKg  *float64
	RearOverhangM     *float64
}

// Extras captures additional load that affects stability.
// WaterFrontTankLitres doubles as "front extra kg" for drawbar gear.
type Extras struct {
	RearLoadKg           *float64
	NumEbikes            *int
	FrontStorageHeavy    *bool
	WaterFrontTankLitres *float64
	WaterRearTankLitres  *float64
	Notes                string
}

// Evaluation is the full advisor result for one rig.
type Evaluation struct {
	Status                OverallStatus
	RiskColour            RiskColour
	BallWeightPctOfATM    *float64
	BallWeightPctOfLoaded *float64
	Checks                []Check
	Advice                Advice
	Disclaimer            string
}

// Package touring builds towing-aware trip plans: per-endpoint weather
// summaries, a drive-leg estimate, wind exposure along the leg, and ranked
// alternative stops.
package touring

import (
	"errors"
	"time"

	"github.com/touringbrain/touringbrain/internal/routing"
)

// ErrLocationNameRequired indicates a location with neither coordinates nor
// a usable name. Client input error.
var ErrLocationNameRequired = errors.New("location name is required")

// Location is a trip endpoint as supplied by the caller. Coordinates are
// optional; a name-only location is geocoded during planning.
type Location struct {
	Name string
	Lat  *float64
	Lon  *float64
}

// ResolvedLocation is a location with known coordinates.
type ResolvedLocation struct {
	Name string
	Lat  float64
	Lon  float64
}

// DaySummary describes towing conditions at one location on one day.
type DaySummary struct {
	Date           time.Time
	RainMm         float64
	WindAvgKmh     float64
	WindGustKmh    float64
	TowingStress   int
	OvernightTempC float64
	Summary        string
	ParkUp         bool
}

// LocationSummary pairs a resolved location with its day summary.
type LocationSummary struct {
	Location ResolvedLocation
	Day      DaySummary
}

// WindProfile reports the single worst wind sample along the straight line
// between the two endpoints. It is an approximation, not road routing, and
// Note says so to the caller.
type WindProfile struct {
	Samples            int
	WorstAtKmFromStart float64
	WorstWindAvgKmh    float64
	WorstWindGustKmh   float64
	WorstTowingStress  int
	Note               string
}

// Comparison says which endpoint is the calmer towing prospect.
type Comparison struct {
	BetterForTowing string
	Reason          string
}

// Alternative is a candidate stop ranked against the planned route.
type Alternative struct {
	Name         string
	Lat          float64
	Lon          float64
	DriveHours   float64
	TowingStress int
	Note         string
}

// PlanRequest is the input to Plan.
type PlanRequest struct {
	From          Location
	To            Location
	TravelDate    time.Time
	MaxDriveHours *float64
}

// Plan is the assembled touring plan.
type Plan struct {
	TravelDate        time.Time
	MainLeg           routing.Leg
	FromSummary       LocationSummary
	ToSummary         LocationSummary
	RouteTowingStress int
	ComfortLabel      string
	Comparison        Comparison
	Recommendation    string
	WindProfile       WindProfile
	Alternatives      []Alternative
}

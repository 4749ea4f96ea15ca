package touring

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"
)

// samePlaceEpsilonDeg treats a candidate within ~11m of the start as the
// start itself.
const samePlaceEpsilonDeg = 1e-4

type waypoint struct {
	name string
	lat  float64
	lon  float64
}

// alternativeStops is the fixed candidate list of popular NZ touring stops.
var alternativeStops = []waypoint{
	{"Taupō", -38.6857, 176.0702},
	{"Tūrangi", -38.9889, 175.8076},
	{"Ohakune", -39.4180, 175.3985},
	{"Taihape", -39.6776, 175.7966},
	{"Bulls", -40.1770, 175.3854},
	{"Levin", -40.6220, 175.2866},
	{"Martinborough", -41.2194, 175.4606},
	{"Hanmer Springs", -42.5225, 172.8286},
	{"Kaikōura", -42.4000, 173.6800},
	{"Geraldine", -44.0911, 171.2438},
	{"Twizel", -44.2558, 170.1003},
	{"Wānaka", -44.7032, 169.1321},
}

// rankAlternatives evaluates the fixed stop list against the planned leg.
// Candidates at the start point are skipped; candidates outside the drive
// budget (when one is given) are excluded. The survivors are sorted by
// towing stress ascending, calmer options first, with list order preserved
// on ties.
func (s *Service) rankAlternatives(ctx context.Context, from, to ResolvedLocation, travelDate time.Time, maxDriveHours *float64) ([]Alternative, error) {
	mainBearing := bearingDeg(from.Lat, from.Lon, to.Lat, to.Lon)

	out := make([]Alternative, 0, len(alternativeStops))
	for _, wp := range alternativeStops {
		if math.Abs(wp.lat-from.Lat) < samePlaceEpsilonDeg &&
			math.Abs(wp.lon-from.Lon) < samePlaceEpsilonDeg {
			continue
		}

		leg, err := s.routes.EstimateLeg(ctx,
			routingCoord(from), routingCoord(ResolvedLocation{Lat: wp.lat, Lon: wp.lon}),
			maxDriveHours)
		if err != nil {
			return nil, fmt.Errorf("alternative %s: %w", wp.name, err)
		}
		if leg.WithinLimit != nil && !*leg.WithinLimit {
			continue
		}

		day, err := s.daySummary(ctx, wp.lat, wp.lon, travelDate)
		if err != nil {
			return nil, fmt.Errorf("alternative %s: %w", wp.name, err)
		}

		candBearing := bearingDeg(from.Lat, from.Lon, wp.lat, wp.lon)
		out = append(out, Alternative{
			Name:         wp.name,
			Lat:          wp.lat,
			Lon:          wp.lon,
			DriveHours:   leg.DriveHours,
			TowingStress: day.TowingStress,
			Note: fmt.Sprintf("%s, towing stress %d/100",
				alignmentPhrase(mainBearing, candBearing), day.TowingStress),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TowingStress < out[j].TowingStress
	})
	return out, nil
}

// alignmentPhrase classifies how well a candidate's bearing from the start
// lines up with the main route's bearing.
func alignmentPhrase(mainBearing, candBearing float64) string {
	diff := math.Abs(mainBearing - candBearing)
	if diff > 180 {
		diff = 360 - diff
	}
	switch {
	case diff <= 45:
		return "Along route"
	case diff <= 90:
		return "Small detour"
	default:
		return "Side-trip"
	}
}

// bearingDeg returns the initial great-circle bearing from point 1 to
// point 2 in degrees, normalised to [0,360).
func bearingDeg(lat1, lon1, lat2, lon2 float64) float64 {
	const degToRad = math.Pi / 180

	phi1 := lat1 * degToRad
	phi2 := lat2 * degToRad
	dLon := (lon2 - lon1) * degToRad

	y := math.Sin(dLon) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLon)

	deg := math.Atan2(y, x) / degToRad
	return math.Mod(deg+360, 360)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

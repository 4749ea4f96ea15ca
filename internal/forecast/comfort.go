package forecast

// RouteComfort is the comfort label used by route planning.
type RouteComfort string

const (
	RouteComfortGood    RouteComfort = "good"
	RouteComfortFair    RouteComfort = "fair"
	RouteComfortCaution RouteComfort = "caution"
	RouteComfortParkUp  RouteComfort = "park_up"
)

// Daily-briefing comfort labels. Free-form strings rather than an enum:
// they are shown to users verbatim.
const (
	briefingComfortable = "Comfortable"
	briefingOKWithCare  = "OK with care"
	briefingStressy     = "Stressy / exposed"
	briefingRough       = "Rough – park up if you can"
)

// BriefingComfortLabel maps a stress score plus raw rain and overnight
// temperature to the daily-briefing comfort label. The "Comfortable" band
// additionally requires a dry, not-too-cold day.
//
// This table intentionally differs from RouteComfortLabel; the two are
// tuned per feature and must stay separate.
func BriefingComfortLabel(stress int, rainMm, overnightTempC float64) string {
	if stress <= 25 && rainMm < 2 && overnightTempC >= 5 {
		return briefingComfortable
	}
	if stress <= 50 {
		return briefingOKWithCare
	}
	if stress <= 75 {
		return briefingStressy
	}
	return briefingRough
}

// RouteComfortLabel maps a stress score to the route-planning comfort label.
func RouteComfortLabel(stress int) RouteComfort {
	switch {
	case stress <= 40:
		return RouteComfortGood
	case stress <= 60:
		return RouteComfortFair
	case stress <= 80:
		return RouteComfortCaution
	default:
		return RouteComfortParkUp
	}
}

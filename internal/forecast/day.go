package forecast

import "time"

// Observation is one day's raw weather inputs for a location. Wind figures
// are daily maxima in km/h, rain is the daily accumulation in mm.
type Observation struct {
	Date        time.Time
	RainMm      float64
	WindPeakKmh float64
	WindGustKmh float64
	TempMinC    float64
}

// DayOutlook is the per-day scoring result: the stress score plus the
// derived figures it was computed from.
type DayOutlook struct {
	Date        time.Time
	RainMm      float64
	AvgWindKmh  float64
	WindPeakKmh float64
	GustKmh     float64
	TempMinC    float64
	Stress      int
	ParkUp      bool
}

// BuildDayOutlook scores a single day's observation. The average wind is
// derived from the daily peak, and the park-up flag uses its own thresholds
// rather than the score's internal caps.
func BuildDayOutlook(o Observation) DayOutlook {
	avg := AverageWind(o.WindPeakKmh)
	return DayOutlook{
		Date:        o.Date,
		RainMm:      o.RainMm,
		AvgWindKmh:  avg,
		WindPeakKmh: o.WindPeakKmh,
		GustKmh:     o.WindGustKmh,
		TempMinC:    o.TempMinC,
		Stress:      StressScore(avg, o.WindGustKmh, o.RainMm),
		ParkUp:      ParkUp(avg, o.WindGustKmh),
	}
}

// SelectDay picks the observation whose date matches target (date equality,
// ignoring time of day). When no entry matches it falls back to the first
// entry rather than failing: forecast series sometimes start a day early or
// late relative to the requested travel day, and a near-miss forecast is
// more useful than none. Callers must guarantee days is non-empty.
func SelectDay(days []Observation, target time.Time) Observation {
	ty, tm, td := target.Date()
	for _, d := range days {
		y, m, dd := d.Date.Date()
		if y == ty && m == tm && dd == td {
			return d
		}
	}
	return days[0]
}

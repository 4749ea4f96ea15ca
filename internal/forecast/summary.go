package forecast

import "strings"

// Summary generation is deterministic template selection, not free text.
// Sentence order is always wind, then rain, then (where taken) overnight
// temperature. The three variants deliberately use slightly different
// wording per endpoint and must not be unified.

// Threshold bands shared by all summary variants.
const (
	summaryWindyAvgKmh  = 30.0
	summaryWindyGustKmh = 40.0
	summaryBreezyAvgKmh = 20.0
	summaryHeavyRainMm  = 8.0
	summaryShowersMm    = 2.0
	summaryColdTempC    = 2.0
	summaryCoolTempC    = 6.0
)

// BriefingSummary builds the daily-briefing narrative from rain and wind.
// This variant does not consider overnight temperature.
func BriefingSummary(rainMm, avgWindKmh, gustKmh float64) string {
	parts := make([]string, 0, 2)

	switch {
	case avgWindKmh >= summaryWindyAvgKmh || gustKmh >= summaryWindyGustKmh:
		parts = append(parts, "Windy with periods that will feel uncomfortable for towing.")
	case avgWindKmh >= summaryBreezyAvgKmh:
		parts = append(parts, "A bit breezy at times but manageable for most rigs.")
	default:
		parts = append(parts, "Light winds for most of the day.")
	}

	switch {
	case rainMm >= summaryHeavyRainMm:
		parts = append(parts, "Expect solid rain at times, roads will be wet and campsites muddy.")
	case rainMm >= summaryShowersMm:
		parts = append(parts, "Some showers around, roads and sites may be damp.")
	default:
		parts = append(parts, "Mostly dry with only light or brief showers, if any.")
	}

	return strings.Join(parts, " ")
}

// CaravanSummary builds the caravan-score narrative, including an overnight
// temperature sentence.
func CaravanSummary(rainMm, avgWindKmh, gustKmh, overnightTempC float64) string {
	parts := make([]string, 0, 3)

	switch {
	case avgWindKmh >= summaryWindyAvgKmh || gustKmh >= summaryWindyGustKmh:
		parts = append(parts, "Windy with periods that will feel uncomfortable for towing.")
	case avgWindKmh >= summaryBreezyAvgKmh:
		parts = append(parts, "A bit breezy at times but manageable for most rigs.")
	default:
		parts = append(parts, "Light winds for most of the day.")
	}

	switch {
	case rainMm >= summaryHeavyRainMm:
		parts = append(parts, "Expect solid rain at times, roads will be wet.")
	case rainMm >= summaryShowersMm:
		parts = append(parts, "Some showers around, roads may be damp.")
	default:
		parts = append(parts, "Mostly dry with only light or brief showers, if any.")
	}

	parts = append(parts, temperatureSentence(overnightTempC))

	return strings.Join(parts, " ")
}

// TouringSummary builds the touring-plan narrative. Same structure as the
// caravan variant with route-focused wind and rain wording.
func TouringSummary(rainMm, avgWindKmh, gustKmh, overnightTempC float64) string {
	parts := make([]string, 0, 3)

	switch {
	case avgWindKmh >= summaryWindyAvgKmh || gustKmh >= summaryWindyGustKmh:
		parts = append(parts, "Windy with stretches that will feel tiring for towing.")
	case avgWindKmh >= summaryBreezyAvgKmh:
		parts = append(parts, "A bit breezy at times but manageable for most rigs.")
	default:
		parts = append(parts, "Light winds for most of the day.")
	}

	switch {
	case rainMm >= summaryHeavyRainMm:
		parts = append(parts, "Expect proper rain at times, roads will stay wet.")
	case rainMm >= summaryShowersMm:
		parts = append(parts, "Some showers around, roads may be damp.")
	default:
		parts = append(parts, "Mostly dry with only light or brief showers, if any.")
	}

	parts = append(parts, temperatureSentence(overnightTempC))

	return strings.Join(parts, " ")
}

func temperatureSentence(overnightTempC float64) string {
	switch {
	case overnightTempC <= summaryColdTempC:
		return "Cold overnight, you’ll want decent heating."
	case overnightTempC <= summaryCoolTempC:
		return "Cool overnight, a bit of extra bedding is a good idea."
	default:
		return "Overnight temperatures are fairly mild."
	}
}

package towing

import (
	"fmt"
	"strings"
)

const (
	// nearLimitFraction marks a load as near its limit once it reaches this
	// share of the rated figure.
	nearLimitFraction = 0.9

	// ebikeKg is the assumed mass of one e-bike on a rear rack.
	ebikeKg = 27.0

	// Ball weight guidance band, percent of caravan weight.
	ballPctLowOK    = 8.0
	ballPctHighOK   = 12.0
	ballPctLowNear  = 6.0
	ballPctHighNear = 14.0

	// Rear load bands on a caravan, kg.
	rearLoadOverKg = 100.0
	rearLoadNearKg = 50.0

	// Motorhome rear-overhang leverage thresholds.
	overhangNearM      = 2.0
	overhangNearLoadKg = 60.0
)

const (
	caravanDisclaimer = "This is general guidance only based on the numbers you entered and typical " +
		"towing advice. It may not reflect the exact limits of your specific vehicle, " +
		"caravan, year or model. Always check your owner’s manuals, compliance plates " +
		"and local regulations, and use a certified weighbridge if in doubt."

	motorhomeDisclaimer = "This is general guidance only based on the numbers you entered and typical " +
		"motorhome loading advice. It may not reflect the exact limits of your specific " +
		"chassis, conversion or model. Always check compliance plates, manuals and local " +
		"regulations, and use a certified weighbridge if in doubt."

	weighbridgeAdvice = "Before travelling long distances, get weights measured on a certified " +
		"weighbridge and review your manufacturer's limits. Consider shifting heavy " +
		"items forward or redistributing load where appropriate."
)

// EvaluateTowedCaravan runs the loading checks for a car plus caravan
// combination.
func EvaluateTowedCaravan(vehicle Vehicle, caravan Caravan, extras Extras) Evaluation {
	var checks []Check

	if c := checkTowRating(vehicle, caravan); c != nil {
		checks = append(checks, *c)
	}

	ballCheck, ballATMPct, ballLoadedPct := checkBallWeight(caravan, vehicle)
	if ballCheck != nil {
		checks = append(checks, *ballCheck)
	}

	if c := checkRearLoad(extras); c != nil {
		checks = append(checks, *c)
	}
	if c := checkFrontLoad(caravan, vehicle, extras, ballATMPct); c != nil {
		checks = append(checks, *c)
	}

	status, colour := overallStatusAndColour(checks)
	return Evaluation{
		Status:                status,
		RiskColour:            colour,
		BallWeightPctOfATM:    ballATMPct,
		BallWeightPctOfLoaded: ballLoadedPct,
		Checks:                checks,
		Advice:                buildAdvice(status, checks),
		Disclaimer:            caravanDisclaimer,
	}
}

// EvaluateMotorhome runs the loading checks for a motorhome or campervan.
func EvaluateMotorhome(m Motorhome, extras Extras) Evaluation {
	var checks []Check

	if m.GVMKg != nil && m.CurrentWeightKg != nil {
		gvm := *m.GVMKg
		actual := *m.CurrentWeightKg

		switch {
		case actual > gvm:
			checks = append(checks, Check{
				Item:   "combined_mass",
				Status: CheckOverLimit,
				Detail: fmt.Sprintf("Your measured motorhome weight (%.0f kg) appears to be over "+
					"its GVM (%.0f kg). Treat this as a red flag and get proper weights "+
					"and advice before travelling.", actual, gvm),
			})
		case actual >= nearLimitFraction*gvm:
			checks = append(checks, Check{
				Item:   "combined_mass",
				Status: CheckNearLimit,
				Detail: fmt.Sprintf("Your measured motorhome weight (%.0f kg) is close to its GVM "+
					"(%.0f kg). You have very little margin for extra gear, water or "+
					"passengers.", actual, gvm),
			})
		default:
			checks = append(checks, Check{
				Item:   "combined_mass",
				Status: CheckOK,
				Detail: fmt.Sprintf("On the numbers provided, your motorhome weight (%.0f kg) is "+
					"under its GVM (%.0f kg). Still worth confirming on a weighbridge "+
					"from time to time.", actual, gvm),
			})
		}
	} else {
		checks = append(checks, Check{
			Item:   "combined_mass",
			Status: CheckUnknown,
			Detail: "No usable GVM and current weight provided, so it's not possible to comment " +
				"on how heavily loaded the motorhome is. A certified weighbridge is the best " +
				"way to confirm you're within limits.",
		})
	}

	if c := checkAxle("front", m.FrontAxleRatingKg, m.FrontAxleActualKg); c != nil {
		checks = append(checks, *c)
	}
	if c := checkAxle("rear", m.RearAxleRatingKg, m.RearAxleActualKg); c != nil {
		checks = append(checks, *c)
	}

	rearLoad := totalRearLoad(extras)
	if m.RearOverhangM != nil && rearLoad > 0 {
		if *m.RearOverhangM >= overhangNearM && rearLoad >= overhangNearLoadKg {
			checks = append(checks, Check{
				Item:   "rear_load",
				Status: CheckNearLimit,
				Detail: fmt.Sprintf("There's a fair amount of weight (around %.0f kg) hanging "+
					"off the rear with an overhang of about %.1f m. "+
					"This adds a lot of leverage to the rear axle and can affect handling in "+
					"crosswinds or on rough roads.", rearLoad, *m.RearOverhangM),
			})
		} else {
			checks = append(checks, Check{
				Item:   "rear_load",
				Status: CheckOK,
				Detail: fmt.Sprintf("There's some weight (around %.0f kg) mounted at the rear. "+
					"Even modest rear loads on a motorhome can change how it feels on the road, "+
					"so pay attention to how it drives and adjust if it feels light in the front.", rearLoad),
			})
		}
	}

	status, colour := overallStatusAndColour(checks)
	return Evaluation{
		Status:     status,
		RiskColour: colour,
		Checks:     checks,
		Advice:     buildAdvice(status, checks),
		Disclaimer: motorhomeDisclaimer,
	}
}

func checkTowRating(vehicle Vehicle, caravan Caravan) *Check {
	if vehicle.TowRatingBrakedKg == nil {
		return &Check{
			Item:   "tow_rating",
			Status: CheckUnknown,
			Detail: "No braked tow rating provided for the vehicle. Check your handbook or " +
				"compliance plate and update these numbers.",
		}
	}

	vanWeight := firstSet(caravan.LoadedEstimateKg, caravan.ATMKg)
	if vanWeight == nil {
		return &Check{
			Item:   "tow_rating",
			Status: CheckUnknown,
			Detail: "No caravan loaded weight or ATM provided, so it's not possible to " +
				"compare against your vehicle's tow rating.",
		}
	}

	rating := *vehicle.TowRatingBrakedKg
	switch {
	case *vanWeight > rating:
		return &Check{
			Item:   "tow_rating",
			Status: CheckOverLimit,
			Detail: fmt.Sprintf("Your estimated caravan weight (%.0f kg) appears to be over "+
				"your vehicle's braked tow rating (%.0f kg). Treat this as a red "+
				"flag and get proper weights and advice before towing.", *vanWeight, rating),
		}
	case *vanWeight >= nearLimitFraction*rating:
		return &Check{
			Item:   "tow_rating",
			Status: CheckNearLimit,
			Detail: fmt.Sprintf("Your estimated caravan weight (%.0f kg) is close to your "+
				"vehicle's braked tow rating (%.0f kg). Allow very little margin "+
				"for extra gear and aim to get weighed.", *vanWeight, rating),
		}
	default:
		return &Check{
			Item:   "tow_rating",
			Status: CheckOK,
			Detail: fmt.Sprintf("On the numbers provided, your caravan weight (%.0f kg) is under "+
				"your vehicle's braked tow rating (%.0f kg). Still worth confirming "+
				"with a weighbridge when you can.", *vanWeight, rating),
		}
	}
}

// checkBallWeight judges the measured ball weight against the vehicle's ball
// limit and the common 8-12% guidance band. The percentage of loaded weight
// takes precedence over the percentage of ATM when both are computable.
func checkBallWeight(caravan Caravan, vehicle Vehicle) (*Check, *float64, *float64) {
	ball := caravan.BallWeightKg
	atm := caravan.ATMKg
	loaded := firstSet(caravan.LoadedEstimateKg, caravan.ATMKg)

	var ballATMPct, ballLoadedPct *float64
	if ball != nil && atm != nil && *atm > 0 {
		pct := (*ball / *atm) * 100.0
		ballATMPct = &pct
	}
	if ball != nil && loaded != nil && *loaded > 0 {
		pct := (*ball / *loaded) * 100.0
		ballLoadedPct = &pct
	}

	if ball == nil || (ballATMPct == nil && ballLoadedPct == nil) {
		return &Check{
			Item:   "ball_weight",
			Status: CheckUnknown,
			Detail: "No usable ball weight or caravan weight provided, so it's not " +
				"possible to comment on ball weight percentage. A common rule of " +
				"thumb is around 8–12% of loaded caravan weight on the ball.",
		}, ballATMPct, ballLoadedPct
	}

	if vehicle.MaxBallWeightKg != nil && *ball > *vehicle.MaxBallWeightKg {
		return &Check{
			Item:   "ball_weight",
			Status: CheckOverLimit,
			Detail: fmt.Sprintf("Measured ball weight (%.0f kg) appears to be over your "+
				"towbar/vehicle ball limit (%.0f kg). "+
				"This is outside safe and legal guidance — re-check loading and "+
				"weights before towing.", *ball, *vehicle.MaxBallWeightKg),
		}, ballATMPct, ballLoadedPct
	}

	effectivePct := firstSet(ballLoadedPct, ballATMPct)

	var (
		status CheckStatus
		detail string
	)
	switch {
	case effectivePct == nil:
		status = CheckUnknown
		detail = "Could not compute a reliable ball weight percentage. As a guide, many " +
			"setups aim for roughly 8–12% of loaded caravan weight on the ball."
	case ballPctLowOK <= *effectivePct && *effectivePct <= ballPctHighOK:
		status = CheckOK
		detail = fmt.Sprintf("Ball weight is about %.1f%% of caravan weight, which is "+
			"within the common guidance band of around 8–12%% for many rigs.", *effectivePct)
	case (ballPctLowNear <= *effectivePct && *effectivePct < ballPctLowOK) ||
		(ballPctHighOK < *effectivePct && *effectivePct <= ballPctHighNear):
		status = CheckNearLimit
		detail = fmt.Sprintf("Ball weight is about %.1f%% of caravan weight, which is on "+
			"the edge of common guidance. Too low can encourage sway; too high can "+
			"overload the towbar and rear axle.", *effectivePct)
	default:
		status = CheckOverLimit
		detail = fmt.Sprintf("Ball weight is about %.1f%% of caravan weight, which is "+
			"well outside the common 8–12%% guidance band. Very low ball weight often "+
			"leads to sway, while very high ball weight can overload the towbar and "+
			"rear axle.", *effectivePct)
	}

	return &Check{Item: "ball_weight", Status: status, Detail: detail}, ballATMPct, ballLoadedPct
}

func checkRearLoad(extras Extras) *Check {
	rearLoad := totalRearLoad(extras)
	if rearLoad <= 0 {
		return nil
	}

	var (
		status CheckStatus
		detail string
	)
	switch {
	case rearLoad >= rearLoadOverKg:
		status = CheckOverLimit
		detail = fmt.Sprintf("There's a lot of weight hanging off the rear of the caravan (roughly "+
			"%.0f kg including bikes and racks). Heavy rear loads reduce "+
			"effective ball weight and can make sway much more likely, especially in "+
			"crosswinds or emergency manoeuvres.", rearLoad)
	case rearLoad >= rearLoadNearKg:
		status = CheckNearLimit
		detail = fmt.Sprintf("There's a significant amount of weight on the rear of the caravan "+
			"(around %.0f kg). Rear-mounted bikes and boxes tend to reduce "+
			"effective ball weight and increase sway risk.", rearLoad)
	default:
		status = CheckOK
		detail = fmt.Sprintf("There's some weight on the rear of the caravan (about %.0f kg). "+
			"Even modest rear loads can affect stability, so it's still worth checking "+
			"ball weight and how the rig feels on the road.", rearLoad)
	}

	return &Check{Item: "rear_load", Status: status, Detail: detail}
}

// checkFrontLoad comments on mass forward of the axle (toolboxes, gas
// bottles, generators, bikes on the drawbar). It stays quiet when nothing
// meaningful is flagged at the front.
func checkFrontLoad(caravan Caravan, vehicle Vehicle, extras Extras, ballATMPct *float64) *Check {
	hasFrontStorage := extras.FrontStorageHeavy != nil && *extras.FrontStorageHeavy
	frontExtra := 0.0
	if extras.WaterFrontTankLitres != nil {
		frontExtra = *extras.WaterFrontTankLitres
	}

	if !hasFrontStorage && frontExtra <= 0 {
		return nil
	}

	var (
		status  CheckStatus
		reasons []string
	)

	ball := caravan.BallWeightKg
	ballLimit := vehicle.MaxBallWeightKg

	switch {
	case ball != nil && ballLimit != nil && *ball > *ballLimit:
		status = CheckOverLimit
		reasons = append(reasons, fmt.Sprintf(
			"Measured ball weight (%.0f kg) already appears to exceed your "+
				"towbar/vehicle ball limit (%.0f kg).", *ball, *ballLimit))
	case ballATMPct != nil && *ballATMPct > ballPctHighOK:
		status = CheckNearLimit
		reasons = append(reasons, fmt.Sprintf(
			"Ball weight is already on the high side at about %.1f%% of ATM. "+
				"Extra weight at the front tends to push this even higher.", *ballATMPct))
	default:
		status = CheckNearLimit
		reasons = append(reasons,
			"Extra load mounted towards the front of the van tends to increase ball weight "+
				"and put more load into the towbar and rear axle.")
	}

	if frontExtra > 0 {
		reasons = append(reasons, fmt.Sprintf(
			"There's roughly %.0f kg of additional gear mounted towards the front.", frontExtra))
	}

	detail := strings.Join(reasons, " ") +
		" Extra mass at the front (toolboxes, gas bottles, generators, bikes on the drawbar) " +
		"increases ball weight and loads up the towbar and rear axle. " +
		"If the ball weight is already on the high side, adding more at the front can push the setup " +
		"outside safe limits. Always re-check ball weight after adding or moving front-mounted gear."

	return &Check{Item: "front_load", Status: status, Detail: detail}
}

func checkAxle(name string, ratingKg, actualKg *float64) *Check {
	if ratingKg == nil || actualKg == nil {
		return nil
	}
	rating, actual := *ratingKg, *actualKg

	switch {
	case actual > rating:
		return &Check{
			Item:   "axle_rating",
			Status: CheckOverLimit,
			Detail: fmt.Sprintf("The %s axle appears to be over its rated load "+
				"(%.0f kg vs %.0f kg). This is a red flag for handling, "+
				"tyre life and legal compliance.", name, actual, rating),
		}
	case actual >= nearLimitFraction*rating:
		return &Check{
			Item:   "axle_rating",
			Status: CheckNearLimit,
			Detail: fmt.Sprintf("The %s axle is close to its rated load "+
				"(%.0f kg vs %.0f kg). You have very little margin for "+
				"extra gear at that end of the vehicle.", name, actual, rating),
		}
	default:
		return &Check{
			Item:   "axle_rating",
			Status: CheckOK,
			Detail: fmt.Sprintf("The %s axle load (%.0f kg) is under its rated limit "+
				"(%.0f kg) on the numbers provided.", name, actual, rating),
		}
	}
}

// overallStatusAndColour rolls the per-check statuses up to a single
// verdict: any over_limit wins, then any near_limit, then any ok.
func overallStatusAndColour(checks []Check) (OverallStatus, RiskColour) {
	if len(checks) == 0 {
		return StatusUnknown, ColourGrey
	}

	var hasOver, hasNear, hasOK bool
	for _, c := range checks {
		switch c.Status {
		case CheckOverLimit:
			hasOver = true
		case CheckNearLimit:
			hasNear = true
		case CheckOK:
			hasOK = true
		}
	}

	switch {
	case hasOver:
		return StatusOverLimits, ColourRed
	case hasNear:
		return StatusNearLimits, ColourAmber
	case hasOK:
		return StatusOK, ColourGreen
	default:
		return StatusUnknown, ColourGrey
	}
}

func buildAdvice(status OverallStatus, checks []Check) Advice {
	var summary string
	switch status {
	case StatusOverLimits:
		summary = "On the numbers you've given, this setup should be treated as a red flag " +
			"until you've confirmed actual weights and limits."
	case StatusNearLimits:
		summary = "You're close to common limits in a few areas. Treat this as a caution and " +
			"double-check weights before long trips or challenging routes."
	case StatusOK:
		summary = "On the numbers you've given, your setup looks broadly within common " +
			"guidance, but it's still worth confirming with a weighbridge."
	default:
		summary = "There wasn't enough information to give a firm view. Providing tow " +
			"ratings, ball weight and caravan weight will improve this advice."
	}

	detailed := make([]string, 0, len(checks)+1)
	for _, c := range checks {
		detailed = append(detailed, c.Detail)
	}
	if status == StatusOverLimits || status == StatusNearLimits {
		detailed = append(detailed, weighbridgeAdvice)
	}

	return Advice{Summary: summary, Detailed: detailed}
}

func totalRearLoad(extras Extras) float64 {
	rearLoad := 0.0
	if extras.RearLoadKg != nil {
		rearLoad = *extras.RearLoadKg
	}
	if extras.NumEbikes != nil {
		rearLoad += float64(*extras.NumEbikes) * ebikeKg
	}
	return rearLoad
}

func firstSet(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

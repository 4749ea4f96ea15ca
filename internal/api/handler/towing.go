package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/touringbrain/touringbrain/internal/api/models"
	"github.com/touringbrain/touringbrain/internal/api/response"
	"github.com/touringbrain/touringbrain/internal/lookup"
	"github.com/touringbrain/touringbrain/internal/towing"
)

// TowingHandler handles the towing and loading advisor.
type TowingHandler struct {
	validate *validator.Validate
}

// NewTowingHandler creates a new TowingHandler.
func NewTowingHandler() *TowingHandler {
	return &TowingHandler{validate: validator.New()}
}

// Evaluate handles POST /v1/towing/evaluate. The vehicle and caravan blocks
// may come from the request body, from the reference lookups via the hint
// fields, or a mix; lookup values only fill fields the caller left unset.
func (h *TowingHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req models.TowingAdvisorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		response.BadRequest(w, r, "invalid request", validationErrors(err))
		return
	}

	extras := models.ExtrasInput{}
	if req.Extras != nil {
		extras = *req.Extras
	}

	switch req.RigType {
	case towing.RigTowedCaravan:
		h.evaluateTowedCaravan(w, r, req, extras)
	case towing.RigMotorhome, towing.RigCampervan:
		h.evaluateMotorhome(w, r, req, extras)
	default:
		response.BadRequest(w, r, fmt.Sprintf(
			"Unsupported rig_type '%s'. Use 'towed_caravan', 'motorhome' or 'campervan'.",
			req.RigType), nil)
	}
}

func (h *TowingHandler) evaluateTowedCaravan(w http.ResponseWriter, r *http.Request, req models.TowingAdvisorRequest, extras models.ExtrasInput) {
	vehicle := req.Vehicle
	caravanBlock := req.Caravan

	var vehicleLookupMeta, caravanLookupMeta map[string]interface{}

	if req.UseVehicleLookup && req.VehicleMake != "" && req.VehicleModel != "" {
		matches, err := lookup.Vehicles(req.VehicleMake, req.VehicleModel, req.VehicleYear, req.VehicleVariant)
		if err != nil {
			response.InternalError(w, r, fmt.Sprintf("Vehicle lookup error: %v", err))
			return
		}

		vehicleLookupMeta = map[string]interface{}{
			"used":             true,
			"make":             req.VehicleMake,
			"model":            req.VehicleModel,
			"year":             req.VehicleYear,
			"variant":          req.VehicleVariant,
			"match_id":         nil,
			"match_confidence": "none",
		}
		if len(matches) > 0 {
			v := matches[0]
			vehicle = &models.VehicleInput{
				Label:             strings.TrimSpace(fmt.Sprintf("%s %s %s", v.YearRange, v.Make, v.Model)),
				TowRatingBrakedKg: intToFloat(v.BrakedTowCapacityKg),
				MaxBallWeightKg:   intToFloat(v.MaxBallWeightKg),
				Notes:             &v.Notes,
			}
			vehicleLookupMeta["match_id"] = v.VehicleID
			vehicleLookupMeta["match_confidence"] = v.Confidence
		}
	}

	if req.UseCaravanLookup && req.CaravanBrand != "" && req.CaravanModel != "" {
		matches, err := lookup.Caravans(req.CaravanBrand, req.CaravanModel, req.CaravanLengthCategory)
		if err != nil {
			response.InternalError(w, r, fmt.Sprintf("Caravan lookup error: %v", err))
			return
		}

		caravanLookupMeta = map[string]interface{}{
			"used":             true,
			"brand":            req.CaravanBrand,
			"model":            req.CaravanModel,
			"length_category":  req.CaravanLengthCategory,
			"match_id":         nil,
			"match_confidence": "none",
		}
		if len(matches) > 0 {
			c := matches[0]
			if caravanBlock == nil {
				caravanBlock = &models.CaravanInput{
					Label:        strings.TrimSpace(fmt.Sprintf("%s %s", c.Brand, c.Model)),
					ATMKg:        c.ATMKg,
					AxleRatingKg: c.AxleRatingKg,
				}
			} else {
				// Only fill in fields the caller left unset.
				if caravanBlock.ATMKg == nil {
					caravanBlock.ATMKg = c.ATMKg
				}
				if caravanBlock.AxleRatingKg == nil {
					caravanBlock.AxleRatingKg = c.AxleRatingKg
				}
			}
			caravanLookupMeta["match_id"] = c.CaravanID
			caravanLookupMeta["match_confidence"] = c.Confidence
		}
	}

	if vehicle == nil || caravanBlock == nil {
		response.BadRequest(w, r,
			"For 'towed_caravan' you must provide both 'vehicle' and 'caravan' "+
				"blocks, or use the lookup hints so TouringBrain can fill them.", nil)
		return
	}

	eval := towing.EvaluateTowedCaravan(
		towingVehicle(*vehicle),
		towingCaravan(*caravanBlock),
		towingExtras(extras),
	)

	out := advisorResponse(eval)
	out.InputsEcho = map[string]interface{}{
		"rig_type":       req.RigType,
		"vehicle":        vehicle,
		"caravan":        caravanBlock,
		"motorhome":      req.Motorhome,
		"extras":         extras,
		"vehicle_lookup": vehicleLookupMeta,
		"caravan_lookup": caravanLookupMeta,
	}
	response.JSON(w, r, http.StatusOK, out)
}

func (h *TowingHandler) evaluateMotorhome(w http.ResponseWriter, r *http.Request, req models.TowingAdvisorRequest, extras models.ExtrasInput) {
	if req.Motorhome == nil {
		response.BadRequest(w, r, fmt.Sprintf(
			"For '%s' you must provide a 'motorhome' block.", req.RigType), nil)
		return
	}

	eval := towing.EvaluateMotorhome(towingMotorhome(*req.Motorhome), towingExtras(extras))

	out := advisorResponse(eval)
	out.InputsEcho = map[string]interface{}{
		"rig_type":  req.RigType,
		"vehicle":   req.Vehicle,
		"caravan":   req.Caravan,
		"motorhome": req.Motorhome,
		"extras":    extras,
	}
	response.JSON(w, r, http.StatusOK, out)
}

func advisorResponse(eval towing.Evaluation) models.TowingAdvisorResponse {
	checks := make([]models.TowingCheck, 0, len(eval.Checks))
	for _, c := range eval.Checks {
		checks = append(checks, models.TowingCheck{
			Item:   c.Item,
			Status: string(c.Status),
			Detail: c.Detail,
		})
	}

	return models.TowingAdvisorResponse{
		Status:                string(eval.Status),
		RiskColour:            string(eval.RiskColour),
		BallWeightPctOfATM:    eval.BallWeightPctOfATM,
		BallWeightPctOfLoaded: eval.BallWeightPctOfLoaded,
		Checks:                checks,
		Advice: models.AdviceBlock{
			Summary:  eval.Advice.Summary,
			Detailed: eval.Advice.Detailed,
		},
		Disclaimer: eval.Disclaimer,
	}
}

func towingVehicle(in models.VehicleInput) towing.Vehicle {
	out := towing.Vehicle{
		Label:             in.Label,
		TowRatingBrakedKg: in.TowRatingBrakedKg,
		MaxBallWeightKg:   in.MaxBallWeightKg,
	}
	if in.Notes != nil {
		out.Notes = *in.Notes
	}
	return out
}

func towingCaravan(in models.CaravanInput) towing.Caravan {
	return towing.Caravan{
		Label:            in.Label,
		ATMKg:            in.ATMKg,
		LoadedEstimateKg: in.LoadedEstimateKg,
		BallWeightKg:     in.BallWeightKg,
		AxleRatingKg:     in.AxleRatingKg,
	}
}

func towingMotorhome(in models.MotorhomeInput) towing.Motorhome {
	return towing.Motorhome{
		Label:             in.Label,
		GVMKg:             in.GVMKg,
		CurrentWeightKg:   in.CurrentWeightKg,
		FrontAxleRatingKg: in.FrontAxleRatingKg,
		RearAxleRatingKg:  in.RearAxleRatingKg,
		FrontAxleActualKg: in.FrontAxleActualKg,
		RearAxleActualKg:  in.RearAxleActualKg,
		RearOverhangM:     in.RearOverhangM,
	}
}

func towingExtras(in models.ExtrasInput) towing.Extras {
	out := towing.Extras{
		RearLoadKg:           in.RearLoadKg,
		NumEbikes:            in.NumEbikes,
		FrontStorageHeavy:    in.FrontStorageHeavy,
		WaterFrontTankLitres: in.WaterFrontTankLitres,
		WaterRearTankLitres:  in.WaterRearTankLitres,
	}
	if in.Notes != nil {
		out.Notes = *in.Notes
	}
	return out
}

func intToFloat(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/touringbrain/touringbrain/internal/api/models"
	"github.com/touringbrain/touringbrain/internal/api/response"
	"github.com/touringbrain/touringbrain/internal/touring"
)

// TouringService builds touring plans.
type TouringService interface {
	Plan(ctx context.Context, req touring.PlanRequest) (*touring.Plan, error)
}

// TouringHandler handles touring endpoints.
type TouringHandler struct {
	service  TouringService
	validate *validator.Validate
}

// NewTouringHandler creates a new TouringHandler.
func NewTouringHandler(service TouringService) *TouringHandler {
	return &TouringHandler{
		service:  service,
		validate: validator.New(),
	}
}

// Plan handles POST /v1/touring/plan - the full A-to-B touring plan for a
// travel day.
func (h *TouringHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req models.TouringPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		response.BadRequest(w, r, "invalid request", validationErrors(err))
		return
	}

	travelDate, err := time.Parse("2006-01-02", req.TravelDayISO)
	if err != nil {
		response.BadRequest(w, r, "travel_day_iso must be a date in YYYY-MM-DD form", nil)
		return
	}

	plan, err := h.service.Plan(r.Context(), touring.PlanRequest{
		From:          touringLocation(req.FromLocation),
		To:            touringLocation(req.ToLocation),
		TravelDate:    travelDate,
		MaxDriveHours: req.MaxDriveHours,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := models.TouringPlanResponse{
		TravelDayISO:   travelDate.Format("2006-01-02"),
		TravelDayHuman: travelDate.Format("Monday 02 January 2006"),
		MainLeg: models.RouteLegInfo{
			DistanceKm:         plan.MainLeg.DistanceKm,
			DriveHoursEstimate: plan.MainLeg.DriveHours,
			MaxDriveHours:      plan.MainLeg.MaxDriveHours,
			WithinDriveLimit:   plan.MainLeg.WithinLimit,
			Estimated:          plan.MainLeg.Estimated,
		},
		FromSummary:       locationSummaryModel(plan.FromSummary),
		ToSummary:         locationSummaryModel(plan.ToSummary),
		RouteTowingStress: plan.RouteTowingStress,
		ComfortLabel:      plan.ComfortLabel,
		Comparison: models.Comparison{
			BetterForTowing: plan.Comparison.BetterForTowing,
			Reason:          plan.Comparison.Reason,
		},
		Recommendation: plan.Recommendation,
		RouteWindProfile: &models.RouteWindProfile{
			Samples:            plan.WindProfile.Samples,
			WorstAtKmFromStart: plan.WindProfile.WorstAtKmFromStart,
			WorstWindAvgKmh:    plan.WindProfile.WorstWindAvgKmh,
			WorstWindGustKmh:   plan.WindProfile.WorstWindGustKmh,
			WorstTowingStress:  plan.WindProfile.WorstTowingStress,
			Note:               plan.WindProfile.Note,
		},
		Alternatives: make([]models.RouteAlternative, 0, len(plan.Alternatives)),
	}
	for _, alt := range plan.Alternatives {
		out.Alternatives = append(out.Alternatives, models.RouteAlternative{
			Name:               alt.Name,
			Latitude:           alt.Lat,
			Longitude:          alt.Lon,
			DriveHoursEstimate: alt.DriveHours,
			TowingStress:       alt.TowingStress,
			Note:               alt.Note,
		})
	}

	response.JSON(w, r, http.StatusOK, out)
}

func touringLocation(loc models.TouringLocation) touring.Location {
	return touring.Location{
		Name: loc.Name,
		Lat:  loc.Latitude,
		Lon:  loc.Longitude,
	}
}

func locationSummaryModel(s touring.LocationSummary) models.LocationSummary {
	return models.LocationSummary{
		Location: models.Location{
			Name:      s.Location.Name,
			Latitude:  s.Location.Lat,
			Longitude: s.Location.Lon,
		},
		Day: models.TouringDaySummary{
			Date:           s.Day.Date.Format("2006-01-02"),
			RainMm:         s.Day.RainMm,
			WindAvgKmh:     s.Day.WindAvgKmh,
			WindGustKmh:    s.Day.WindGustKmh,
			TowingStress:   s.Day.TowingStress,
			OvernightTempC: s.Day.OvernightTempC,
			AISummary:      s.Day.Summary,
			ParkUpFlag:     s.Day.ParkUp,
		},
	}
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/touringbrain/touringbrain/internal/api/models"
	"github.com/touringbrain/touringbrain/internal/api/response"
	"github.com/touringbrain/touringbrain/internal/caravan"
	"github.com/touringbrain/touringbrain/internal/lookup"
)

// CaravanService scores towing days at a location.
type CaravanService interface {
	ScoreLocation(ctx context.Context, lat, lon float64) (*caravan.Score, error)
}

// CaravanHandler handles caravan-mode endpoints.
type CaravanHandler struct {
	service  CaravanService
	validate *validator.Validate
}

// NewCaravanHandler creates a new CaravanHandler.
func NewCaravanHandler(service CaravanService) *CaravanHandler {
	return &CaravanHandler{
		service:  service,
		validate: validator.New(),
	}
}

// Score handles POST /v1/caravan/score - towing scores for the next three
// days at the caller's location.
func (h *CaravanHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req models.CaravanScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		response.BadRequest(w, r, "invalid request", validationErrors(err))
		return
	}

	score, err := h.service.ScoreLocation(r.Context(), req.Location.Latitude, req.Location.Longitude)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := models.CaravanScoreResponse{
		Location:       req.Location,
		Days:           make([]models.CaravanDayForecast, 0, len(score.Days)),
		Recommendation: score.Recommendation,
	}
	for _, d := range score.Days {
		out.Days = append(out.Days, models.CaravanDayForecast{
			Date:           d.Date.Format("2006-01-02"),
			RainMm:         d.RainMm,
			WindAvgKmh:     d.WindAvgKmh,
			WindAvgKnots:   d.WindAvgKnots,
			WindGustKmh:    d.WindGustKmh,
			WindGustKnots:  d.WindGustKnots,
			TowingStress:   d.TowingStress,
			OvernightTempC: d.OvernightTempC,
			AISummary:      d.Summary,
		})
	}

	response.JSON(w, r, http.StatusOK, out)
}

// Lookup handles GET /v1/caravan/lookup - typical figures for a caravan
// model range.
func (h *CaravanHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	brand := r.URL.Query().Get("brand")
	model := r.URL.Query().Get("model")
	lengthCategory := r.URL.Query().Get("length_category")

	if brand == "" || model == "" {
		response.BadRequest(w, r, "brand and model are required", nil)
		return
	}

	matches, err := lookup.Caravans(brand, model, lengthCategory)
	if err != nil {
		response.InternalError(w, r, err.Error())
		return
	}

	out := models.CaravanLookupResponse{
		Matches: make([]models.CaravanInfo, 0, len(matches)),
	}
	for _, m := range matches {
		out.Matches = append(out.Matches, caravanInfoModel(m))
	}

	switch len(matches) {
	case 0:
		out.Message = "No caravan match found in the TouringBrain guide. " +
			"Use your compliance plate and weighbridge figures to enter ATM and ball weight manually."
	case 1:
		out.Message = "Found one likely match. Treat these numbers as a starting point only."
	default:
		out.Message = "Found several possible matches. Pick the closest one to your van and " +
			"always confirm against the plate and weighbridge."
	}

	response.JSON(w, r, http.StatusOK, out)
}

func caravanInfoModel(m lookup.CaravanInfo) models.CaravanInfo {
	return models.CaravanInfo{
		CaravanID:               m.CaravanID,
		Brand:                   m.Brand,
		Model:                   m.Model,
		Variant:                 optString(m.Variant),
		LengthCategory:          optString(m.LengthCategory),
		CountryRegion:           optString(m.CountryRegion),
		ATMKg:                   m.ATMKg,
		TareKg:                  m.TareKg,
		AxleRatingKg:            m.AxleRatingKg,
		BallWeightEmptyKg:       m.BallWeightEmptyKg,
		TypicalBallLoadedPctMin: m.TypicalBallLoadedPctMin,
		TypicalBallLoadedPctMax: m.TypicalBallLoadedPctMax,
		Confidence:              m.Confidence,
		Notes:                   optString(m.Notes),
	}
}

// optString maps an empty string to a JSON null.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

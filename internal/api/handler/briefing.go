package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/touringbrain/touringbrain/internal/api/models"
	"github.com/touringbrain/touringbrain/internal/api/response"
	"github.com/touringbrain/touringbrain/internal/briefing"
)

// defaultBriefingDays is used when the caller omits the day count.
const defaultBriefingDays = 3

// BriefingService builds daily briefings.
type BriefingService interface {
	Daily(ctx context.Context, lat, lon float64, days int) (*briefing.Briefing, error)
}

// BriefingHandler handles briefing endpoints.
type BriefingHandler struct {
	service  BriefingService
	validate *validator.Validate
}

// NewBriefingHandler creates a new BriefingHandler.
func NewBriefingHandler(service BriefingService) *BriefingHandler {
	return &BriefingHandler{
		service:  service,
		validate: validator.New(),
	}
}

// DailyBriefing handles POST /v1/briefing/daily - the multi-day touring and
// camping outlook for one location.
func (h *BriefingHandler) DailyBriefing(w http.ResponseWriter, r *http.Request) {
	var req models.DailyBriefingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		response.BadRequest(w, r, "invalid request", validationErrors(err))
		return
	}

	days := req.Days
	if days == 0 {
		days = defaultBriefingDays
	}

	result, err := h.service.Daily(r.Context(), req.Location.Latitude, req.Location.Longitude, days)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := models.DailyBriefingResponse{
		Location:       req.Location,
		Days:           make([]models.DailyBriefingDay, 0, len(result.Days)),
		Headline:       result.Headline,
		Recommendation: result.Recommendation,
	}
	for _, d := range result.Days {
		out.Days = append(out.Days, models.DailyBriefingDay{
			Date:           d.Date.Format("2006-01-02"),
			RainMm:         d.RainMm,
			WindAvgKmh:     d.WindAvgKmh,
			WindAvgKnots:   d.WindAvgKnots,
			WindGustKmh:    d.WindGustKmh,
			WindGustKnots:  d.WindGustKnots,
			OvernightTempC: d.OvernightTempC,
			TowingStress:   d.TowingStress,
			ComfortLabel:   d.ComfortLabel,
			AISummary:      d.Summary,
		})
	}

	response.JSON(w, r, http.StatusOK, out)
}

// validationErrors converts validator errors to field errors for the
// Problem response.
func validationErrors(err error) []models.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, models.FieldError{
			Field:   fe.Namespace(),
			Message: fe.Tag(),
		})
	}
	return out
}

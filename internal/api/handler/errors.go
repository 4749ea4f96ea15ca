package handler

import (
	"errors"
	"net/http"

	"github.com/touringbrain/touringbrain/internal/api/response"
	"github.com/touringbrain/touringbrain/internal/geocoding"
	"github.com/touringbrain/touringbrain/internal/routing"
	"github.com/touringbrain/touringbrain/internal/touring"
	"github.com/touringbrain/touringbrain/internal/weather"
)

// writeServiceError maps domain errors to Problem responses. Upstream
// provider failures become 502, bad input becomes 400 or 422, and a place
// we could not geocode becomes 404.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *geocoding.NotFoundError

	switch {
	case errors.As(err, &notFound):
		response.NotFound(w, r, notFound.Error())
	case errors.Is(err, touring.ErrLocationNameRequired),
		errors.Is(err, geocoding.ErrEmptyQuery):
		response.UnprocessableEntity(w, r, "Location name is required.")
	case errors.Is(err, weather.ErrInvalidCoordinates),
		errors.Is(err, routing.ErrInvalidCoordinates):
		response.BadRequest(w, r, "coordinates are out of range", nil)
	case errors.Is(err, weather.ErrProviderUnavailable),
		errors.Is(err, weather.ErrNoDailyData),
		errors.Is(err, geocoding.ErrProviderUnavailable),
		errors.Is(err, routing.ErrProviderUnavailable),
		errors.Is(err, routing.ErrNoRouteFound),
		errors.Is(err, routing.ErrMissingToken):
		response.BadGateway(w, r, err.Error())
	default:
		response.InternalError(w, r, "an unexpected error occurred")
	}
}

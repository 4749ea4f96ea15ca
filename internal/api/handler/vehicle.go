package handler

import (
	"net/http"
	"strconv"

	"github.com/touringbrain/touringbrain/internal/api/models"
	"github.com/touringbrain/touringbrain/internal/api/response"
	"github.com/touringbrain/touringbrain/internal/lookup"
)

// VehicleHandler handles the tow vehicle reference lookup.
type VehicleHandler struct{}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler() *VehicleHandler {
	return &VehicleHandler{}
}

// Lookup handles GET /v1/vehicle/lookup - towing data for a common NZ/AU
// tow vehicle. Guidance only; plates and handbooks win.
func (h *VehicleHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	vehicleMake := r.URL.Query().Get("make")
	model := r.URL.Query().Get("model")
	variant := r.URL.Query().Get("variant")

	if vehicleMake == "" || model == "" {
		response.BadRequest(w, r, "make and model are required", nil)
		return
	}

	var year *int
	if rawYear := r.URL.Query().Get("year"); rawYear != "" {
		parsed, err := strconv.Atoi(rawYear)
		if err != nil {
			response.BadRequest(w, r, "year must be an integer", nil)
			return
		}
		year = &parsed
	}

	matches, err := lookup.Vehicles(vehicleMake, model, year, variant)
	if err != nil {
		response.InternalError(w, r, err.Error())
		return
	}

	out := models.VehicleLookupResponse{
		Matches: make([]models.VehicleInfo, 0, len(matches)),
	}
	for _, m := range matches {
		out.Matches = append(out.Matches, vehicleInfoModel(m))
	}

	switch len(matches) {
	case 0:
		out.Message = "No exact match found in the TouringBrain vehicle guide. " +
			"Use your compliance plate and handbook to enter tow limits and ball weight manually."
	case 1:
		out.Message = "Found one likely match. Treat these numbers as a starting point only."
	default:
		out.Message = "Found a few possible matches. Pick the closest one to your rig, " +
			"and always double-check against the plates and handbook."
	}

	response.JSON(w, r, http.StatusOK, out)
}

func vehicleInfoModel(m lookup.VehicleInfo) models.VehicleInfo {
	return models.VehicleInfo{
		VehicleID:             m.VehicleID,
		Make:                  m.Make,
		Model:                 m.Model,
		YearRange:             m.YearRange,
		Variant:               m.Variant,
		CountryRegion:         optString(m.CountryRegion),
		BrakedTowCapacityKg:   m.BrakedTowCapacityKg,
		UnbrakedTowCapacityKg: m.UnbrakedTowCapacityKg,
		MaxBallWeightKg:       m.MaxBallWeightKg,
		GVMKg:                 m.GVMKg,
		GCMKg:                 m.GCMKg,
		Confidence:            m.Confidence,
		Notes:                 m.Notes,
	}
}

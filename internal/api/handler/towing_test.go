package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/touringbrain/touringbrain/internal/api/handler"
	"github.com/touringbrain/touringbrain/internal/api/models"
)

func TestTowingEvaluate_TowedCaravanOK(t *testing.T) {
	h := handler.NewTowingHandler()

	rec := postJSON(t, h.Evaluate, `{
		"rig_type": "towed_caravan",
		"vehicle": {"label": "Ford Ranger", "tow_rating_braked_kg": 3500, "max_ball_weight_kg": 350},
		"caravan": {"label": "Jayco Journey", "atm_kg": 2500, "ball_weight_kg": 250}
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TowingAdvisorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "green", resp.RiskColour)
	require.NotNil(t, resp.BallWeightPctOfATM)
	assert.InDelta(t, 10.0, *resp.BallWeightPctOfATM, 0.001)
	assert.NotEmpty(t, resp.Checks)
	assert.Contains(t, resp.Disclaimer, "general guidance only")

	assert.Equal(t, "towed_caravan", resp.InputsEcho["rig_type"])
	assert.Contains(t, resp.InputsEcho, "vehicle")
	assert.Contains(t, resp.InputsEcho, "caravan")
}

func TestTowingEvaluate_TowedCaravanMissingBlocks(t *testing.T) {
	h := handler.NewTowingHandler()

	rec := postJSON(t, h.Evaluate, `{
		"rig_type": "towed_caravan",
		"vehicle": {"label": "Ford Ranger"}
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(),
		"you must provide both 'vehicle' and 'caravan' blocks")
}

func TestTowingEvaluate_VehicleLookupFillsBlock(t *testing.T) {
	h := handler.NewTowingHandler()

	rec := postJSON(t, h.Evaluate, `{
		"rig_type": "towed_caravan",
		"use_vehicle_lookup": true,
		"vehicle_make": "Ford",
		"vehicle_model": "Ranger",
		"vehicle_year": 2020,
		"caravan": {"label": "Jayco Journey", "atm_kg": 2500, "ball_weight_kg": 250}
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TowingAdvisorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	meta, ok := resp.InputsEcho["vehicle_lookup"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, meta["used"])
	assert.NotNil(t, meta["match_id"])
	assert.NotEqual(t, "none", meta["match_confidence"])

	vehicle, ok := resp.InputsEcho["vehicle"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, vehicle["label"], "Ford Ranger")
	assert.InDelta(t, 3500.0, vehicle["tow_rating_braked_kg"].(float64), 0.001)

	assert.Equal(t, "ok", resp.Status)
}

func TestTowingEvaluate_VehicleLookupNoMatch(t *testing.T) {
	h := handler.NewTowingHandler()

	rec := postJSON(t, h.Evaluate, `{
		"rig_type": "towed_caravan",
		"use_vehicle_lookup": true,
		"vehicle_make": "Lada",
		"vehicle_model": "Niva",
		"caravan": {"label": "Jayco Journey", "atm_kg": 2500}
	}`)

	// No match leaves the vehicle block empty, which is a client error.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "lookup hints")
}

func TestTowingEvaluate_CaravanLookupFillsMissingFields(t *testing.T) {
	h := handler.NewTowingHandler()

	// atm_kg comes from the lookup; the supplied ball weight survives.
	rec := postJSON(t, h.Evaluate, `{
		"rig_type": "towed_caravan",
		"vehicle": {"label": "Ford Ranger", "tow_rating_braked_kg": 3500},
		"caravan": {"label": "My Van", "ball_weight_kg": 250},
		"use_caravan_lookup": true,
		"caravan_brand": "Jayco",
		"caravan_model": "Journey"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TowingAdvisorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	caravanEcho, ok := resp.InputsEcho["caravan"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "My Van", caravanEcho["label"])
	assert.InDelta(t, 2500.0, caravanEcho["atm_kg"].(float64), 0.001)
	assert.InDelta(t, 250.0, caravanEcho["ball_weight_kg"].(float64), 0.001)

	require.NotNil(t, resp.BallWeightPctOfATM)
	assert.InDelta(t, 10.0, *resp.BallWeightPctOfATM, 0.001)
}

func TestTowingEvaluate_CaravanLookupBuildsBlock(t *testing.T) {
	h := handler.NewTowingHandler()

	rec := postJSON(t, h.Evaluate, `{
		"rig_type": "towed_caravan",
		"vehicle": {"label": "Ford Ranger", "tow_rating_braked_kg": 3500},
		"use_caravan_lookup": true,
		"caravan_brand": "Jayco",
		"caravan_model": "Journey"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TowingAdvisorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	caravanEcho, ok := resp.InputsEcho["caravan"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Jayco Journey", caravanEcho["label"])

	meta, ok := resp.InputsEcho["caravan_lookup"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, meta["used"])
	assert.NotNil(t, meta["match_id"])
}

func TestTowingEvaluate_Motorhome(t *testing.T) {
	h := handler.NewTowingHandler()

	rec := postJSON(t, h.Evaluate, `{
		"rig_type": "motorhome",
		"motorhome": {"label": "Ducato", "gvm_kg": 4000, "current_weight_kg": 3900}
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TowingAdvisorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "near_limits", resp.Status)
	assert.Equal(t, "amber", resp.RiskColour)
	assert.Contains(t, resp.Disclaimer, "motorhome loading advice")
}

func TestTowingEvaluate_CampervanUsesMotorhomeChecks(t *testing.T) {
	h := handler.NewTowingHandler()

	rec := postJSON(t, h.Evaluate, `{
		"rig_type": "campervan",
		"motorhome": {"label": "Hiace", "gvm_kg": 3000, "current_weight_kg": 2500}
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TowingAdvisorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestTowingEvaluate_MotorhomeBlockRequired(t *testing.T) {
	h := handler.NewTowingHandler()

	rec := postJSON(t, h.Evaluate, `{"rig_type": "motorhome"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "For 'motorhome' you must provide a 'motorhome' block.")
}

func TestTowingEvaluate_UnsupportedRigType(t *testing.T) {
	h := handler.NewTowingHandler()

	rec := postJSON(t, h.Evaluate, `{"rig_type": "houseboat"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/touringbrain/touringbrain/internal/api/handler"
	"github.com/touringbrain/touringbrain/internal/api/models"
	"github.com/touringbrain/touringbrain/internal/caravan"
)

type mockCaravanService struct {
	score *caravan.Score
	err   error
}

func (m *mockCaravanService) ScoreLocation(_ context.Context, _, _ float64) (*caravan.Score, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.score, nil
}

func TestCaravanScore_Success(t *testing.T) {
	svc := &mockCaravanService{score: &caravan.Score{
		Days: []caravan.Day{
			{
				Date:         time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
				WindAvgKmh:   35,
				WindGustKmh:  50,
				TowingStress: 80,
				Summary:      "Windy with periods that will feel uncomfortable for towing.",
			},
		},
		Recommendation: "Park up today – winds hit our 30 km/h threshold. Tomorrow or Day 3 look better.",
	}}
	h := handler.NewCaravanHandler(svc)

	rec := postJSON(t, h.Score,
		`{"location": {"name": "Wellington", "latitude": -41.29, "longitude": 174.78}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CaravanScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Days, 1)
	assert.Equal(t, "2026-03-14", resp.Days[0].Date)
	assert.Equal(t, 80, resp.Days[0].TowingStress)
	assert.Contains(t, resp.Recommendation, "Park up today")
}

func TestCaravanScore_ValidationFailure(t *testing.T) {
	h := handler.NewCaravanHandler(&mockCaravanService{})

	rec := postJSON(t, h.Score, `{"location": {"latitude": -41.29, "longitude": 174.78}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func getLookup(t *testing.T, h http.HandlerFunc, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, http.NoBody)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestCaravanLookup_SingleMatch(t *testing.T) {
	h := handler.NewCaravanHandler(&mockCaravanService{})

	rec := getLookup(t, h.Lookup, "brand=Jayco&model=Journey")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CaravanLookupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "Jayco", resp.Matches[0].Brand)
	require.NotNil(t, resp.Matches[0].ATMKg)
	assert.InDelta(t, 2500.0, *resp.Matches[0].ATMKg, 0.001)
	assert.Equal(t, "Found one likely match. Treat these numbers as a starting point only.", resp.Message)
}

func TestCaravanLookup_NoMatch(t *testing.T) {
	h := handler.NewCaravanHandler(&mockCaravanService{})

	rec := getLookup(t, h.Lookup, "brand=Nowhere&model=Nothing")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CaravanLookupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Matches)
	assert.Contains(t, resp.Message, "No caravan match found")
}

func TestCaravanLookup_MissingParams(t *testing.T) {
	h := handler.NewCaravanHandler(&mockCaravanService{})

	rec := getLookup(t, h.Lookup, "brand=Jayco")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVehicleLookup_SingleMatch(t *testing.T) {
	h := handler.NewVehicleHandler()

	rec := getLookup(t, h.Lookup, "make=Ford&model=Ranger&year=2020")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.VehicleLookupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "Ford", resp.Matches[0].Make)
	require.NotNil(t, resp.Matches[0].BrakedTowCapacityKg)
	assert.Equal(t, 3500, *resp.Matches[0].BrakedTowCapacityKg)
	assert.Equal(t, "Found one likely match. Treat these numbers as a starting point only.", resp.Message)
}

func TestVehicleLookup_NoMatch(t *testing.T) {
	h := handler.NewVehicleHandler()

	rec := getLookup(t, h.Lookup, "make=Lada&model=Niva")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.VehicleLookupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Matches)
	assert.Contains(t, resp.Message, "No exact match found")
}

func TestVehicleLookup_BadYear(t *testing.T) {
	h := handler.NewVehicleHandler()

	rec := getLookup(t, h.Lookup, "make=Ford&model=Ranger&year=recent")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVehicleLookup_MissingParams(t *testing.T) {
	h := handler.NewVehicleHandler()

	rec := getLookup(t, h.Lookup, "model=Ranger")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Package lookup serves the embedded towing reference tables for common
// NZ/AU tow vehicles and caravans. The tables are loaded once on first use
// and never mutated, so they are safe for concurrent readers. All figures
// are guidance only; compliance plates and weighbridges win.
package lookup

import (
	"embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

//go:embed data/vehicles.json data/caravans.json
var dataFS embed.FS

const defaultVehicleNotes = "Use as a rough guide only. Always check your vehicle plates and handbook."

// VehicleInfo is one tow vehicle record from the reference table.
type VehicleInfo struct {
	VehicleID             string  `json:"id"`
	Make                  string  `json:"make"`
	Model                 string  `json:"model"`
	YearRange             string  `json:"year_range"`
	Variant               string  `json:"variant"`
	CountryRegion         string  `json:"country_region,omitempty"`
	BrakedTowCapacityKg   *int    `json:"braked_tow_capacity_kg,omitempty"`
	UnbrakedTowCapacityKg *int    `json:"unbraked_tow_capacity_kg,omitempty"`
	MaxBallWeightKg       *int    `json:"max_ball_weight_kg,omitempty"`
	GVMKg                 *int    `json:"gvm_kg,omitempty"`
	GCMKg                 *int    `json:"gcm_kg,omitempty"`
	Confidence            string  `json:"confidence"`
	Notes                 string  `json:"notes"`
}

var (
	vehiclesOnce sync.Once
	vehiclesDB   []VehicleInfo
	vehiclesErr  error
)

func loadVehicles() ([]VehicleInfo, error) {
	vehiclesOnce.Do(func() {
		raw, err := dataFS.ReadFile("data/vehicles.json")
		if err != nil {
			vehiclesErr = fmt.Errorf("reading vehicles table: %w", err)
			return
		}

		var doc struct {
			Vehicles []VehicleInfo `json:"vehicles"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			vehiclesErr = fmt.Errorf("parsing vehicles table: %w", err)
			return
		}

		for i := range doc.Vehicles {
			if doc.Vehicles[i].Confidence == "" {
				doc.Vehicles[i].Confidence = "low"
			}
			if doc.Vehicles[i].Notes == "" {
				doc.Vehicles[i].Notes = defaultVehicleNotes
			}
		}
		vehiclesDB = doc.Vehicles
	})
	return vehiclesDB, vehiclesErr
}

// Vehicles returns the reference records matching the given make and model.
// Make and model match exactly, case-insensitively. When a year is given and
// the record carries a parsable "start-end" year range, the year must fall
// inside it; unparsable ranges ignore the year. Variant is advisory only.
func Vehicles(make, model string, year *int, variant string) ([]VehicleInfo, error) {
	db, err := loadVehicles()
	if err != nil {
		return nil, err
	}

	var matches []VehicleInfo
	for _, rec := range db {
		if !strings.EqualFold(strings.TrimSpace(rec.Make), strings.TrimSpace(make)) {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(rec.Model), strings.TrimSpace(model)) {
			continue
		}
		if year != nil && !yearInRange(*year, rec.YearRange) {
			continue
		}
		matches = append(matches, rec)
	}
	return matches, nil
}

// yearInRange reports whether year falls inside a "start-end" range string.
// Ranges that fail to parse admit any year.
func yearInRange(year int, yearRange string) bool {
	start, end, ok := strings.Cut(yearRange, "-")
	if !ok {
		return true
	}
	startYear, err1 := strconv.Atoi(strings.TrimSpace(start))
	endYear, err2 := strconv.Atoi(strings.TrimSpace(end))
	if err1 != nil || err2 != nil {
		return true
	}
	return startYear <= year && year <= endYear
}

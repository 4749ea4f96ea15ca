package lookup

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// CaravanInfo is one caravan record from the reference table. Values are
// typical figures for the model range, not plate figures for any specific
// van.
type CaravanInfo struct {
	CaravanID               string   `json:"id"`
	Brand                   string   `json:"brand"`
	Model                   string   `json:"model"`
	Variant                 string   `json:"variant,omitempty"`
	LengthCategory          string   `json:"length_category,omitempty"`
	CountryRegion           string   `json:"country_region,omitempty"`
	ATMKg                   *float64 `json:"atm_kg,omitempty"`
	TareKg                  *float64 `json:"tare_kg,omitempty"`
	AxleRatingKg            *float64 `json:"axle_rating_kg,omitempty"`
	BallWeightEmptyKg       *float64 `json:"ball_weight_empty_kg,omitempty"`
	TypicalBallLoadedPctMin *float64 `json:"typical_ball_loaded_pct_min,omitempty"`
	TypicalBallLoadedPctMax *float64 `json:"typical_ball_loaded_pct_max,omitempty"`
	Confidence              string   `json:"confidence"`
	Notes                   string   `json:"notes,omitempty"`
}

var (
	caravansOnce sync.Once
	caravansDB   []CaravanInfo
	caravansErr  error
)

func loadCaravans() ([]CaravanInfo, error) {
	caravansOnce.Do(func() {
		raw, err := dataFS.ReadFile("data/caravans.json")
		if err != nil {
			caravansErr = fmt.Errorf("reading caravans table: %w", err)
			return
		}

		var doc struct {
			Caravans []CaravanInfo `json:"caravans"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			caravansErr = fmt.Errorf("parsing caravans table: %w", err)
			return
		}

		for i := range doc.Caravans {
			if doc.Caravans[i].Confidence == "" {
				doc.Caravans[i].Confidence = "low"
			}
		}
		caravansDB = doc.Caravans
	})
	return caravansDB, caravansErr
}

// Caravans returns the reference records matching the given brand and model.
// Brand and model match case-insensitively as substrings of the record's
// fields. The optional length hint matches fuzzily on digits, so "19ft",
// "19" and "19-20ft" all match a stored "19-20 ft". Empty brand or model
// matches nothing.
func Caravans(brand, model, lengthCategory string) ([]CaravanInfo, error) {
	brandQ := strings.ToLower(strings.TrimSpace(brand))
	modelQ := strings.ToLower(strings.TrimSpace(model))
	lengthQ := strings.ToLower(strings.TrimSpace(lengthCategory))

	if brandQ == "" || modelQ == "" {
		return nil, nil
	}

	db, err := loadCaravans()
	if err != nil {
		return nil, err
	}

	var matches []CaravanInfo
	for _, rec := range db {
		if !strings.Contains(strings.ToLower(rec.Brand), brandQ) {
			continue
		}
		if !strings.Contains(strings.ToLower(rec.Model), modelQ) {
			continue
		}
		if lengthQ != "" {
			wantedDigits := digitsOnly(lengthQ)
			haveDigits := digitsOnly(rec.LengthCategory)
			if wantedDigits != "" && !strings.Contains(haveDigits, wantedDigits) {
				continue
			}
		}
		matches = append(matches, rec)
	}
	return matches, nil
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

package engine

import (
	"fmt"

	"github.com/dm/vita/internal/format"
	"github.com/dm/vita/internal/model"
)

// CalcVitalsSummary returns display cards for the most recent vitals record.
// Records are expected most-recent-first, matching the agent's ordering.
// Returns an empty (non-nil) slice when no vitals are available.
func CalcVitalsSummary(ov *model.Overview) []model.VitalCard {
	cards := []model.VitalCard{}
	if ov == nil || len(ov.Vitals) == 0 {
		return cards
	}

	latest := ov.Vitals[0]

	bp := latest.BloodPressure
	if bp.Systolic > 0 || bp.Diastolic > 0 {
		cards = append(cards, model.VitalCard{
			Label:  "Blood Pressure",
			Value:  fmt.Sprintf("%d/%d mmHg", bp.Systolic, bp.Diastolic),
			Status: bp.Status,
		})
	}
	if latest.HeartRate.Value > 0 {
		cards = append(cards, model.VitalCard{
			Label:  "Heart Rate",
			Value:  format.Reading(latest.HeartRate.Value, latest.HeartRate.Unit),
			Status: latest.HeartRate.Status,
		})
	}
	if latest.OxygenSaturation.Value > 0 {
		cards = append(cards, model.VitalCard{
			Label:  "O2 Saturation",
			Value:  format.Reading(latest.OxygenSaturation.Value, latest.OxygenSaturation.Unit),
			Status: latest.OxygenSaturation.Status,
		})
	}
	if latest.Temperature.Value > 0 {
		cards = append(cards, model.VitalCard{
			Label:  "Temperature",
			Value:  format.Reading(latest.Temperature.Value, latest.Temperature.Unit),
			Status: latest.Temperature.Status,
		})
	}

	return cards
}

// CountAbnormalResults counts the results in the most recent blood test
// whose status is anything other than "normal". Returns 0 when no blood
// tests are available.
func CountAbnormalResults(ov *model.Overview) int {
	if ov == nil || len(ov.BloodTests) == 0 {
		return 0
	}

	count := 0
	for _, r := range ov.BloodTests[0].Results {
		if r.Status != "normal" {
			count++
		}
	}
	return count
}

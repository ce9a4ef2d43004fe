// Package calc turns an appliance list into a solar sizing and savings
// estimate. It is stateless: every call re-derives all four result fields
// from the full list.
package calc

import (
	"errors"
	"strings"

	"solarquote/internal/config"
	"solarquote/internal/models"
)

// ErrInvalidAppliance is the single validation failure the engine reports.
// Any invalid row aborts the whole calculation with zeroed results; there is
// no per-row detail.
var ErrInvalidAppliance = errors.New("please fill in valid values for every appliance")

const (
	wattsPerKW     = 1000.0
	daysPerMonth   = 30.4
	maxHoursPerDay = 24.0
)

// validAppliance checks the field constraints for one row.
func validAppliance(a models.Appliance) bool {
	if strings.TrimSpace(a.Name) == "" {
		return false
	}
	if a.Wattage <= 0 {
		return false
	}
	if a.HoursPerDay < 0 || a.HoursPerDay > maxHoursPerDay {
		return false
	}
	return a.Quantity > 0
}

// dailyKWh is the energy one appliance row consumes per day.
func dailyKWh(a models.Appliance) float64 {
	return a.Wattage * a.HoursPerDay * float64(a.Quantity) / wattsPerKW
}

// Calculate validates every appliance in list order and, if all are valid,
// derives the quote estimate. The first invalid row aborts with
// ErrInvalidAppliance and a zero estimate. An empty list is a valid input
// and yields an all-zero estimate. The input slice is never mutated, and no
// rounding is applied; formatting is the caller's concern.
func Calculate(appliances []models.Appliance, cfg config.SolarConfig) (models.QuoteEstimate, error) {
	for _, a := range appliances {
		if !validAppliance(a) {
			return models.QuoteEstimate{}, ErrInvalidAppliance
		}
	}

	var total float64
	for _, a := range appliances {
		total += dailyKWh(a)
	}

	sizeKW := total / (cfg.PeakSunHours * cfg.EfficiencyFactor)
	return models.QuoteEstimate{
		TotalDailyKWh:           total,
		EstimatedSystemSizeKW:   sizeKW,
		EstimatedSystemCost:     sizeKW * cfg.CostPerWatt * wattsPerKW,
		EstimatedMonthlySavings: total * daysPerMonth * cfg.TariffPerKWh * cfg.SavingsPercentage,
	}, nil
}

package extrapolation

import (
	"fmt"
	"strconv"
	"time"

	"github.com/homeledger/backend/internal/domain/entity"
	"github.com/homeledger/backend/internal/domain/valueobject"
)

const (
	// DefaultOilChangeInterval is used when a vehicle has no interval of its own.
	DefaultOilChangeInterval = 5000
	// SoonMilesThreshold switches the message to an urgent tone.
	SoonMilesThreshold = 500
	// ServiceIntervalMonths is the date-based service cadence.
	ServiceIntervalMonths = 6
	// SoonDaysThreshold flags a date-based service as urgent.
	SoonDaysThreshold = 30
)

// PredictVehicle projects the next service for one vehicle.
// Mileage fields win; the last service date is the fallback; otherwise there is no prediction.
func PredictVehicle(v *entity.Vehicle, now time.Time, defaultInterval int) (MaintenancePrediction, bool) {
	if v == nil {
		return MaintenancePrediction{}, false
	}
	if defaultInterval <= 0 {
		defaultInterval = DefaultOilChangeInterval
	}

	p := MaintenancePrediction{
		VehicleID:    v.ID,
		VehicleLabel: v.Label(),
	}

	if v.CurrentMileage != nil && v.LastOilChangeMileage != nil {
		interval := defaultInterval
		if v.OilChangeInterval != nil && *v.OilChangeInterval > 0 {
			interval = *v.OilChangeInterval
		}
		next := *v.LastOilChangeMileage + interval
		until := max(0, next-*v.CurrentMileage)

		p.Basis = MaintenanceBasisMileage
		p.CurrentMileage = *v.CurrentMileage
		p.LastServiceMileage = *v.LastOilChangeMileage
		p.Interval = interval
		p.NextServiceMileage = next
		p.MilesSinceService = max(0, *v.CurrentMileage-*v.LastOilChangeMileage)
		p.MilesUntilOilChange = &until
		p.Urgent = until <= SoonMilesThreshold
		p.Message = mileageMessage(until, next)
		return p, true
	}

	if v.LastServiceDate != nil {
		last := *v.LastServiceDate
		next := last.AddDate(0, ServiceIntervalMonths, 0)
		days := valueobject.DaysBetween(now, next)

		p.Basis = MaintenanceBasisDate
		p.LastServiceDate = &last
		p.NextServiceDate = &next
		p.DaysUntilService = &days
		p.Urgent = days <= SoonDaysThreshold
		p.Message = dateMessage(days, next)
		return p, true
	}

	return MaintenancePrediction{}, false
}

// PredictMaintenance runs PredictVehicle for every vehicle that has a basis.
func PredictMaintenance(vehicles []*entity.Vehicle, now time.Time, defaultInterval int) []MaintenancePrediction {
	predictions := []MaintenancePrediction{}
	for _, v := range vehicles {
		if p, ok := PredictVehicle(v, now, defaultInterval); ok {
			predictions = append(predictions, p)
		}
	}
	return predictions
}

func mileageMessage(until, next int) string {
	switch {
	case until == 0:
		return fmt.Sprintf("Oil change is due now (was due at %s mi).", formatMiles(next))
	case until <= SoonMilesThreshold:
		return fmt.Sprintf("Oil change due soon, %s miles to go.", formatMiles(until))
	default:
		return fmt.Sprintf("Next oil change in about %s miles (at %s mi).", formatMiles(until), formatMiles(next))
	}
}

func dateMessage(days int, next time.Time) string {
	switch {
	case days < 0:
		return fmt.Sprintf("Service is overdue by %d days.", -days)
	case days == 0:
		return "Service is due today."
	case days <= SoonDaysThreshold:
		return fmt.Sprintf("Service due in %d days.", days)
	default:
		return fmt.Sprintf("Next service around %s.", next.Format("January 2, 2006"))
	}
}

// formatMiles renders an integer with thousands separators.
func formatMiles(n int) string {
	if n < 0 {
		return "-" + formatMiles(-n)
	}
	digits := strconv.Itoa(n)
	out := make([]byte, 0, len(digits)+len(digits)/3)
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	return string(out)
}

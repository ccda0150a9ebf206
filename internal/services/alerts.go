package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/driverscash/driverscash-backend/internal/models"
)

// Alert is one reminder's evaluation against the current odometer reading.
type Alert struct {
	MaintenanceType string
	TargetKM        decimal.Decimal
	// Remaining is target minus current, only meaningful when !Overdue.
	Remaining decimal.Decimal
	Overdue   bool
}

type alertEvaluator struct {
	margin decimal.Decimal
}

func NewAlertEvaluator(marginKM decimal.Decimal) *alertEvaluator {
	return &alertEvaluator{margin: marginKM}
}

// Evaluate checks each active reminder independently against currentKM:
// within the margin below target -> approaching, at or past target ->
// overdue, otherwise silent. Reminders whose stored target no longer parses
// are skipped. Output is sorted by maintenance type so repeated evaluations
// of the same state produce the same alerts in the same order.
func (e *alertEvaluator) Evaluate(currentKM decimal.Decimal, reminders []models.Reminder) []Alert {
	var alerts []Alert
	for _, r := range reminders {
		target, err := decimal.NewFromString(r.TargetKM)
		if err != nil {
			continue
		}
		switch {
		case currentKM.GreaterThanOrEqual(target):
			alerts = append(alerts, Alert{
				MaintenanceType: r.MaintenanceType,
				TargetKM:        target,
				Overdue:         true,
			})
		case currentKM.GreaterThanOrEqual(target.Sub(e.margin)):
			alerts = append(alerts, Alert{
				MaintenanceType: r.MaintenanceType,
				TargetKM:        target,
				Remaining:       target.Sub(currentKM),
			})
		}
	}
	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].MaintenanceType < alerts[j].MaintenanceType
	})
	return alerts
}

package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/driverscash/driverscash-backend/internal/models"
)

func km(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestAlertEvaluatorThresholds(t *testing.T) {
	evaluator := NewAlertEvaluator(decimal.NewFromInt(500))
	reminders := []models.Reminder{
		{MaintenanceType: "Oleo", TargetKM: "10000", Status: models.ReminderActive},
	}

	cases := []struct {
		name      string
		currentKM string
		alerts    int
		overdue   bool
		remaining string
	}{
		{"below margin", "9000", 0, false, ""},
		{"just inside margin", "9500", 1, false, "500"},
		{"approaching", "9600", 1, false, "400"},
		{"at target", "10000", 1, true, ""},
		{"past target", "12000", 1, true, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			alerts := evaluator.Evaluate(km(t, c.currentKM), reminders)
			if len(alerts) != c.alerts {
				t.Fatalf("alert count: got %d, want %d", len(alerts), c.alerts)
			}
			if c.alerts == 0 {
				return
			}
			if alerts[0].Overdue != c.overdue {
				t.Fatalf("overdue: got %v, want %v", alerts[0].Overdue, c.overdue)
			}
			if !c.overdue && alerts[0].Remaining.String() != c.remaining {
				t.Fatalf("remaining: got %s, want %s", alerts[0].Remaining, c.remaining)
			}
		})
	}
}

func TestAlertEvaluatorIndependentAndSorted(t *testing.T) {
	evaluator := NewAlertEvaluator(decimal.NewFromInt(500))
	reminders := []models.Reminder{
		{MaintenanceType: "Pneus", TargetKM: "9800"},
		{MaintenanceType: "Correia", TargetKM: "9500"},
		{MaintenanceType: "Filtro", TargetKM: "20000"},
		{MaintenanceType: "Velas", TargetKM: "not-a-number"},
	}

	alerts := evaluator.Evaluate(km(t, "9600"), reminders)
	if len(alerts) != 2 {
		t.Fatalf("alert count: got %d, want 2", len(alerts))
	}
	if alerts[0].MaintenanceType != "Correia" || !alerts[0].Overdue {
		t.Fatalf("first alert: %+v", alerts[0])
	}
	if alerts[1].MaintenanceType != "Pneus" || alerts[1].Overdue {
		t.Fatalf("second alert: %+v", alerts[1])
	}
	if alerts[1].Remaining.String() != "200" {
		t.Fatalf("remaining: got %s, want 200", alerts[1].Remaining)
	}
}

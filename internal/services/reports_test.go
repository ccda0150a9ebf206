package services

import (
	"context"
	"testing"
	"time"

	"github.com/driverscash/driverscash-backend/internal/dto"
	"github.com/driverscash/driverscash-backend/internal/models"
	"github.com/driverscash/driverscash-backend/pkg/helpers"
)

type fakeRecordStore struct {
	records []models.Record
	err     error
	lastUID string
}

func (f *fakeRecordStore) List(_ context.Context, uid string, _ dto.RecordQuery) ([]models.Record, error) {
	f.lastUID = uid
	return f.records, f.err
}

func expenseOn(date, category, value string) models.Record {
	return models.Record{Type: models.RecordExpense, Date: date, Category: category, Value: value}
}

func incomeOn(date, value string) models.Record {
	return models.Record{Type: models.RecordIncome, Date: date, Category: "Corrida", Value: value}
}

func TestPeriodBounds(t *testing.T) {
	// 2026-08-28 is a Friday.
	today := time.Date(2026, time.August, 28, 15, 30, 0, 0, time.UTC)

	from, to := periodBounds(today, dto.PeriodWeek)
	if from.Format(models.DateLayout) != "2026-08-24" {
		t.Fatalf("week from: %s", from.Format(models.DateLayout))
	}
	if to.Format(models.DateLayout) != "2026-08-30" {
		t.Fatalf("week to: %s", to.Format(models.DateLayout))
	}

	// A Sunday still belongs to the Monday-start week containing it.
	sunday := time.Date(2026, time.August, 30, 8, 0, 0, 0, time.UTC)
	from, to = periodBounds(sunday, dto.PeriodWeek)
	if from.Format(models.DateLayout) != "2026-08-24" || to.Format(models.DateLayout) != "2026-08-30" {
		t.Fatalf("sunday week: %s .. %s", from.Format(models.DateLayout), to.Format(models.DateLayout))
	}

	from, to = periodBounds(today, dto.PeriodMonth)
	if from.Format(models.DateLayout) != "2026-08-01" {
		t.Fatalf("month from: %s", from.Format(models.DateLayout))
	}
	// Month-to-date: the report stops at today, not month end.
	if to.Format(models.DateLayout) != "2026-08-28" {
		t.Fatalf("month to: %s", to.Format(models.DateLayout))
	}
}

func TestFinancialWeekly(t *testing.T) {
	today := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	store := &fakeRecordStore{records: []models.Record{
		incomeOn("2026-08-24", "100"), // Monday
		incomeOn("2026-08-30", "50"),  // Sunday, inclusive
		expenseOn("2026-08-26", "Fuel", "30"),
		expenseOn("2026-08-27", "Food", "20"),
		incomeOn("2026-08-23", "999"),                 // previous Sunday, out
		expenseOn("2026-08-31", "Fuel", "999"),        // next Monday, out
		{Type: models.RecordOdometer, Date: "2026-08-25", Value: "55000"}, // ignored
	}}
	svc := NewReportService(store)

	report, err := svc.Financial(helpers.TestCtx(), "user", dto.PeriodWeek, today)
	if err != nil {
		t.Fatalf("Financial error: %v", err)
	}
	if store.lastUID != "user" {
		t.Fatalf("uid: %q", store.lastUID)
	}
	if report.TotalIncome.String() != "150" {
		t.Fatalf("income: %s", report.TotalIncome)
	}
	if report.TotalExpense.String() != "50" {
		t.Fatalf("expense: %s", report.TotalExpense)
	}
	if report.Profit.String() != "100" {
		t.Fatalf("profit: %s", report.Profit)
	}
	if len(report.Categories) != 2 {
		t.Fatalf("categories: %+v", report.Categories)
	}
	// Alphabetical breakdown.
	if report.Categories[0].Category != "Food" || report.Categories[0].Total.String() != "20" {
		t.Fatalf("first category: %+v", report.Categories[0])
	}
	if report.Categories[1].Category != "Fuel" || report.Categories[1].Total.String() != "30" {
		t.Fatalf("second category: %+v", report.Categories[1])
	}
}

func TestFinancialMonthlyExcludesPreviousMonth(t *testing.T) {
	today := time.Date(2026, time.September, 5, 12, 0, 0, 0, time.UTC)
	store := &fakeRecordStore{records: []models.Record{
		incomeOn("2026-09-01", "80"),
		// Within 30 days of today but in the previous month.
		incomeOn("2026-08-28", "500"),
		expenseOn("2026-09-04", "Fuel", "25"),
	}}
	svc := NewReportService(store)

	report, err := svc.Financial(helpers.TestCtx(), "user", dto.PeriodMonth, today)
	if err != nil {
		t.Fatalf("Financial error: %v", err)
	}
	if report.TotalIncome.String() != "80" {
		t.Fatalf("income: %s", report.TotalIncome)
	}
	if report.TotalExpense.String() != "25" {
		t.Fatalf("expense: %s", report.TotalExpense)
	}
	if report.Profit.String() != "55" {
		t.Fatalf("profit: %s", report.Profit)
	}
}

func TestFinancialSkipsMalformedRows(t *testing.T) {
	today := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	store := &fakeRecordStore{records: []models.Record{
		incomeOn("2026-08-28", "100"),
		incomeOn("not-a-date", "50"),
		expenseOn("2026-08-28", "Fuel", "garbage"),
	}}
	svc := NewReportService(store)

	report, err := svc.Financial(helpers.TestCtx(), "user", dto.PeriodWeek, today)
	if err != nil {
		t.Fatalf("Financial error: %v", err)
	}
	if report.TotalIncome.String() != "100" {
		t.Fatalf("income: %s", report.TotalIncome)
	}
	if report.Skipped != 2 {
		t.Fatalf("skipped: %d", report.Skipped)
	}
}

func TestStatementNetTotal(t *testing.T) {
	store := &fakeRecordStore{records: []models.Record{
		incomeOn("2026-08-28", "200"),
		expenseOn("2026-08-27", "Fuel", "75.50"),
		{Type: models.RecordOdometer, Date: "2026-08-26", Value: "55000"},
	}}
	svc := NewReportService(store)

	statement, err := svc.Statement(helpers.TestCtx(), "user")
	if err != nil {
		t.Fatalf("Statement error: %v", err)
	}
	if len(statement.Records) != 3 {
		t.Fatalf("records: %d", len(statement.Records))
	}
	if statement.Net.String() != "124.5" {
		t.Fatalf("net: %s", statement.Net)
	}
}

package services

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/driverscash/driverscash-backend/internal/dto"
	"github.com/driverscash/driverscash-backend/internal/models"
	"github.com/driverscash/driverscash-backend/pkg/logger"
)

type reportRecordStore interface {
	List(ctx context.Context, uid string, q dto.RecordQuery) ([]models.Record, error)
}

type reportService struct {
	records reportRecordStore
}

func NewReportService(records reportRecordStore) *reportService {
	return &reportService{records: records}
}

// periodBounds returns the inclusive day range for a period containing today.
// Week is the ISO calendar week, Monday through Sunday. Month is
// month-to-date: the 1st through today, never through month end.
func periodBounds(today time.Time, period dto.Period) (from, to time.Time) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	switch period {
	case dto.PeriodWeek:
		weekday := int(day.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		from = day.AddDate(0, 0, -(weekday - 1))
		to = from.AddDate(0, 0, 6)
	default:
		from = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		to = day
	}
	return from, to
}

// Financial builds the period-to-date rollup for one user: total income,
// total expense, profit (may be negative) and the expense breakdown by
// category. Rows whose stored date or value fail to parse are skipped,
// counted and logged; they never abort the report.
func (s *reportService) Financial(ctx context.Context, uid string, period dto.Period, today time.Time) (dto.FinancialReport, error) {
	from, to := periodBounds(today, period)
	report := dto.FinancialReport{
		Period:       period,
		From:         from.Format(models.DateLayout),
		To:           to.Format(models.DateLayout),
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Profit:       decimal.Zero,
	}

	records, err := s.records.List(ctx, uid, dto.RecordQuery{})
	if err != nil {
		return report, err
	}

	log := logger.FromContext(ctx)
	byCategory := map[string]decimal.Decimal{}
	for _, r := range records {
		if r.Type != models.RecordIncome && r.Type != models.RecordExpense {
			continue
		}
		date, err := time.ParseInLocation(models.DateLayout, r.Date, today.Location())
		if err != nil {
			log.Warn("skipping record with malformed date", "record_id", r.ID, "date", r.Date)
			report.Skipped++
			continue
		}
		if date.Before(from) || date.After(to) {
			continue
		}
		value, err := decimal.NewFromString(r.Value)
		if err != nil {
			log.Warn("skipping record with malformed value", "record_id", r.ID, "value", r.Value)
			report.Skipped++
			continue
		}
		switch r.Type {
		case models.RecordIncome:
			report.TotalIncome = report.TotalIncome.Add(value)
		case models.RecordExpense:
			report.TotalExpense = report.TotalExpense.Add(value)
			byCategory[r.Category] = byCategory[r.Category].Add(value)
		}
	}

	report.Profit = report.TotalIncome.Sub(report.TotalExpense)
	report.Categories = sortedCategories(byCategory)
	return report, nil
}

// Statement lists everything newest-first with a running net total, the
// original full-report command.
func (s *reportService) Statement(ctx context.Context, uid string) (dto.Statement, error) {
	statement := dto.Statement{Net: decimal.Zero}

	records, err := s.records.List(ctx, uid, dto.RecordQuery{})
	if err != nil {
		return statement, err
	}

	log := logger.FromContext(ctx)
	statement.Records = records
	for _, r := range records {
		if r.Type != models.RecordIncome && r.Type != models.RecordExpense {
			continue
		}
		value, err := decimal.NewFromString(r.Value)
		if err != nil {
			log.Warn("skipping record with malformed value", "record_id", r.ID, "value", r.Value)
			statement.Skipped++
			continue
		}
		if r.Type == models.RecordIncome {
			statement.Net = statement.Net.Add(value)
		} else {
			statement.Net = statement.Net.Sub(value)
		}
	}
	return statement, nil
}

func sortedCategories(byCategory map[string]decimal.Decimal) []dto.CategoryTotal {
	out := make([]dto.CategoryTotal, 0, len(byCategory))
	for category, total := range byCategory {
		out = append(out, dto.CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

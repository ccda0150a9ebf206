package dto

import (
	"github.com/shopspring/decimal"

	"github.com/driverscash/driverscash-backend/internal/models"
)

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// FinancialReport is a period-to-date rollup: totals over income/expense
// records between From and To inclusive, with a per-category expense
// breakdown sorted alphabetically. Skipped counts rows whose stored date or
// value no longer parsed.
type FinancialReport struct {
	Period       Period          `json:"period"`
	From         string          `json:"from"`
	To           string          `json:"to"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Profit       decimal.Decimal `json:"profit"`
	Categories   []CategoryTotal `json:"categories"`
	Skipped      int             `json:"skipped,omitempty"`
}

// Statement is the full newest-first record listing with the net total
// (income minus expense) over everything listed.
type Statement struct {
	Records []models.Record `json:"records"`
	Net     decimal.Decimal `json:"net"`
	Skipped int             `json:"skipped,omitempty"`
}

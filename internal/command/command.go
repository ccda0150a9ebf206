// Package command implements the fixed chat-command grammar. The grammar is
// the de-facto protocol between driver and system: a fixed, ordered list of
// pt-BR patterns matched against normalized text, first match wins.
package command

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindGreeting
	KindHelp
	KindExpense
	KindIncome
	KindExtraIncome
	KindDailyRevenue
	KindFueling
	KindOdometer
	KindCalcConsumption
	KindCalcFuelCost
	KindOdometerReport
	KindSetReminder
	KindCompleteReminder
	KindListReminders
	KindWeeklyReport
	KindMonthlyReport
	KindFullReport
)

// Command is the tagged result of a grammar match. Numeric captures stay raw
// tokens: the numeric convention (currency vs odometer grouping) depends on
// the command, so conversion belongs to the handler, not the grammar.
type Command struct {
	Kind Kind

	// Category holds the free-text capture (expense/income category or
	// maintenance type), trimmed and title-cased.
	Category string

	// Amount is the primary numeric token: money amount, odometer reading
	// or reminder target, depending on Kind.
	Amount string

	// Fueling captures.
	Liters        string
	PricePerLiter string
	FuelType      string
	Odometer      string

	// Trip-calculation captures.
	KMStart        string
	KMEnd          string
	KMDriven       string
	AvgConsumption string
}

// Capitalize normalizes a free-text capture the way categories and
// maintenance types are stored: trimmed, title-cased for pt-BR. A Caser is
// stateful and not safe for concurrent use, so one is built per call.
func Capitalize(text string) string {
	return cases.Title(language.BrazilianPortuguese).String(strings.TrimSpace(text))
}

// Normalize case-folds, trims and collapses inner whitespace before matching.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

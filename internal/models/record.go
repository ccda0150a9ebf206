package models

import (
	"time"
)

type RecordType string

const (
	RecordIncome   RecordType = "income"
	RecordExpense  RecordType = "expense"
	RecordOdometer RecordType = "odometer"
)

type Origin string

const (
	OriginChat   Origin = "chat"
	OriginWebAPI Origin = "api"
)

// Record is one immutable financial or odometer event. Value and Quantity are
// canonical decimal strings ("50.00", "55000.5"); Date is day-granular
// "2006-01-02". Parsing stored values back is lenient: report builders skip
// rows that no longer parse instead of failing the whole report.
type Record struct {
	ID       string     `firestore:"id" json:"id"`
	UserID   string     `firestore:"userId" json:"userId"`
	Origin   Origin     `firestore:"origin" json:"origin"`
	Date     string     `firestore:"date" json:"date"`
	Type     RecordType `firestore:"type" json:"type"`
	Category string     `firestore:"category" json:"category"`
	Value    string     `firestore:"value" json:"value"`
	// Quantity is set only for fuel-volume records (liters).
	Quantity  string    `firestore:"quantity,omitempty" json:"quantity,omitempty"`
	Notes     string    `firestore:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

// DateLayout is the day-granular storage format for Record.Date and
// Reminder.CreatedDate.
const DateLayout = "2006-01-02"

package models

import (
	"time"
)

type ReminderStatus string

const (
	ReminderActive    ReminderStatus = "active"
	ReminderCompleted ReminderStatus = "completed"
	ReminderOverdue   ReminderStatus = "overdue"
)

// Reminder is a maintenance task gated on reaching a target odometer value.
// TargetKM is a canonical decimal string. Status transitions only through
// explicit commands; odometer updates surface alerts without mutating status.
type Reminder struct {
	ID              string         `firestore:"id" json:"id"`
	UserID          string         `firestore:"userId" json:"userId"`
	MaintenanceType string         `firestore:"maintenanceType" json:"maintenanceType"`
	TargetKM        string         `firestore:"targetKm" json:"targetKm"`
	Status          ReminderStatus `firestore:"status" json:"status"`
	CreatedDate     string         `firestore:"createdDate" json:"createdDate"`
	CreatedAt       time.Time      `firestore:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time      `firestore:"updatedAt" json:"updatedAt"`
}

package models

import (
	"time"
)

// User is a driver, resolved lazily by WhatsApp number on first contact.
type User struct {
	ID        string    `firestore:"id" json:"id"`
	WhatsApp  string    `firestore:"whatsapp" json:"whatsapp"`
	Plan      string    `firestore:"plan" json:"plan"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

package dto

import "github.com/driverscash/driverscash-backend/internal/models"

// RecordQuery narrows a record listing. Zero value means "everything,
// newest first".
type RecordQuery struct {
	Type  models.RecordType
	Limit int
}

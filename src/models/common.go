package models

import "time"

const (
	StatusInactive = 0
	StatusActive   = 1
)

// Audit is embedded by every master record.
type Audit struct {
	CreatedByID *int      `json:"created_by_id" gorm:"column:created_by_id"`
	UpdatedByID *int      `json:"updated_by_id" gorm:"column:updated_by_id"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

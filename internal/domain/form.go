package domain

import (
	"time"

	"gorm.io/datatypes" // JSON column support for GORM
)

// Form Model (schema-less key-value submissions)
//
// Submissions and admin users live in separate tables; the form payload is a
// typed key-value map stored as a JSON column.
type Form struct {
	ID        uint              `gorm:"primaryKey" json:"id"`    // Primary key
	Fields    datatypes.JSONMap `gorm:"type:json" json:"fields"` // Arbitrary submitted key-value pairs
	CreatedAt time.Time         `json:"createdAt"`               // Timestamp of submission
	UpdatedAt time.Time         `json:"updatedAt"`               // Timestamp of last edit
}

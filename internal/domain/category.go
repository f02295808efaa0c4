package domain

import "time"

// Category Model
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`        // Primary key
	Name        string    `gorm:"not null" json:"name"`        // Category name
	Description string    `gorm:"type:text" json:"description"` // Optional description
	CreatedAt   time.Time `json:"createdAt"`                   // Timestamp of creation
	UpdatedAt   time.Time `json:"updatedAt"`                   // Timestamp of last update
	Products    []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"` // One-to-many relationship with Product
}

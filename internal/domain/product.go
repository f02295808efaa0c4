package domain

import "time"

// Product Model
type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`                  // Primary key
	Name        string         `gorm:"not null" json:"name"`                  // Product name
	Description string         `gorm:"not null;type:text" json:"description"` // Product description
	Price       float64        `gorm:"not null;type:decimal(10,2)" json:"price"` // Product price
	Stock       int            `gorm:"not null;default:0" json:"stock"`       // Units in stock
	CategoryID  uint           `gorm:"index" json:"categoryId"`               // Foreign key to Category
	Category    *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // Belongs-to relationship with Category
	Images      []ProductImage `gorm:"foreignKey:ProductID" json:"images"`    // One-to-many relationship with ProductImage
	CreatedAt   time.Time      `json:"createdAt"`                             // Timestamp of creation
	UpdatedAt   time.Time      `json:"updatedAt"`                             // Timestamp of last update
}

package domain

// ProductImage Model (no timestamps)
type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`          // Primary key
	ProductID uint   `gorm:"index;not null" json:"productId"` // Foreign key to Product
	ImageURL  string `gorm:"not null" json:"imageUrl"`      // Publicly reachable image URL
}

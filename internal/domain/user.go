package domain

import "time"

// User Model (administrative accounts)
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`            // Primary key
	Username     string     `gorm:"unique;not null" json:"username"` // Unique username
	PasswordHash string     `gorm:"not null" json:"-"`               // Bcrypt hash, never serialized
	Email        string     `gorm:"unique;not null" json:"email"`    // Unique email address
	CreatedAt    time.Time  `json:"createdAt"`                       // Timestamp of registration
	LastLogin    *time.Time `json:"lastLogin"`                       // Last successful login, nil until first login
}

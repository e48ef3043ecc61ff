// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. The password column only ever holds
// a bcrypt hash and is excluded from JSON serialization.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
	UpdatedAt time.Time `json:"-"`
}

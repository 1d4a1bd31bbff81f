package models

import "time"

// User represents a registered account. The username is the primary key
// and is immutable after registration; there is no delete-user path.
// Password holds a bcrypt hash, never the raw credential.
// MonthlyBudget is in cents.
type User struct {
	Username      string    `gorm:"primaryKey;size:20" json:"username"`
	Password      string    `gorm:"not null" json:"-"`
	Email         string    `gorm:"not null" json:"email"`
	FullName      string    `json:"full_name"`
	MonthlyBudget int64     `gorm:"not null;default:0" json:"monthly_budget"`
	CreatedAt     time.Time `json:"created_at"`
}

package models

import "time"

// User represents a registered account. Each user owns exactly one holding,
// created empty on first trade and keyed by username in the holdings table.
type User struct {
	Base
	Username    string     `gorm:"uniqueIndex;not null" json:"username"`
	Password    string     `gorm:"not null" json:"-"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

package models

import "time"

// RevokedToken is keyed by the raw token string. Rows are hard-deleted once
// expired, so there is no soft-delete column.
type RevokedToken struct {
	ID        uint      `gorm:"primaryKey"`
	Token     string    `gorm:"type:text;not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

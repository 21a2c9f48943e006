package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email        string    `gorm:"not null;uniqueIndex;size:255"`
	PasswordHash string    `gorm:"not null" json:"-"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	Tasks        []Task    `gorm:"constraint:OnDelete:CASCADE;"`
	Expenses     []Expense `gorm:"constraint:OnDelete:CASCADE;"`
}

package models

import "gorm.io/gorm"

type Task struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Description *string
	IsDone      bool `gorm:"not null;default:false;index"`
	UserID      uint `gorm:"not null;index"`
}

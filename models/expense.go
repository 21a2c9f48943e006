package models

import (
	"time"

	"gorm.io/gorm"
)

type Expense struct {
	gorm.Model
	Amount      float64 `gorm:"not null"`
	Description *string
	Date        time.Time `gorm:"not null;index"`
	CategoryID  uint      `gorm:"not null;index"`
	Category    Category
	UserID      uint `gorm:"not null;index"`
}

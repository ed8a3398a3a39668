package model

import (
	"time"

	"gorm.io/gorm"
)

type Admin struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
}

// LoginHistory admin girişlerinin kaydı.
type LoginHistory struct {
	ID        uint      `gorm:"primaryKey"`
	AdminID   uint      `gorm:"not null;index"`
	IP        string    `gorm:"size:50"`
	UserAgent string    `gorm:"size:255"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (LoginHistory) TableName() string {
	return "admin_login_history"
}

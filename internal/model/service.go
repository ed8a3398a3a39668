package model

import "gorm.io/gorm"

type Service struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	Icon        string `json:"icon"` // emoji
	ImageURL    string `json:"image_url"`
}

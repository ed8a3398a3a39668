package model

import "gorm.io/gorm"

// Ana sayfa pazarlama içerikleri. Feature/Testimonial/FAQ liste halinde,
// ContactInfo ve CTASection tek kayıt olarak tutulur.

type Feature struct {
	gorm.Model
	Icon        string `json:"icon"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	Order       int    `json:"order" gorm:"default:0"`
}

type Testimonial struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	Comment string `json:"comment" gorm:"type:text;not null"`
	Rating  int    `json:"rating" gorm:"default:5"` // 1-5
	Order   int    `json:"order" gorm:"default:0"`
}

type FAQ struct {
	gorm.Model
	Question string `json:"question" gorm:"not null"`
	Answer   string `json:"answer" gorm:"type:text;not null"`
	Order    int    `json:"order" gorm:"default:0"`
}

func (FAQ) TableName() string {
	return "faqs"
}

type ContactInfo struct {
	gorm.Model
	Phone          string `json:"phone"`
	WhatsApp       string `json:"whatsapp"`
	Email          string `json:"email"`
	Address        string `json:"address" gorm:"type:text"`
	MapURL         string `json:"map_url"`
	WorkingHours   string `json:"working_hours"`
	EmergencyPhone string `json:"emergency_phone"`
}

func (ContactInfo) TableName() string {
	return "contact_info"
}

type CTASection struct {
	gorm.Model
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"button_text"`
}

func (CTASection) TableName() string {
	return "cta_section"
}

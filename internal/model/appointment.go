package model

import "gorm.io/gorm"

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// ValidAppointmentStatus PUT isteklerindeki status değerini doğrular.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCancelled:
		return true
	}
	return false
}

type Appointment struct {
	gorm.Model
	CustomerName string `json:"customer_name" gorm:"not null"`
	Phone        string `json:"phone" gorm:"not null"`
	Email        string `json:"email" gorm:"not null"`
	// Service isimle tutulur, foreign key değildir. Hizmet silinse veya
	// yeniden adlandırılsa bile mevcut randevular eski adı korur.
	Service string            `json:"service" gorm:"not null"`
	Date    string            `json:"date" gorm:"not null"` // YYYY-MM-DD
	Time    string            `json:"time" gorm:"not null"` // HH:MM
	Notes   string            `json:"notes" gorm:"type:text"`
	Status  AppointmentStatus `json:"status" gorm:"default:'pending'"`
}

// pkg/cron/appointment_digest.go
package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"bdgaraj_backend/internal/model"
	"bdgaraj_backend/pkg/database"
	"bdgaraj_backend/pkg/email"
)

// InitAppointmentDigestCron her sabah 08:00'de bekleyen randevuların
// özetini garaj adresine gönderir.
func InitAppointmentDigestCron(emailService *email.EmailService, garageInbox string) {
	if emailService == nil || garageInbox == "" {
		log.Println("Appointment digest cron disabled: email service not configured")
		return
	}

	c := cron.New()

	_, err := c.AddFunc("0 8 * * *", func() {
		sendAppointmentDigest(emailService, garageInbox)
	})
	if err != nil {
		log.Printf("Could not initialize appointment digest cron: %v", err)
		return
	}

	c.Start()
	log.Println("Appointment digest cron started")
}

func sendAppointmentDigest(emailService *email.EmailService, garageInbox string) {
	db := database.GetDB()
	today := time.Now().Format("2006-01-02")

	var pendingCount, todayCount int64
	db.Model(&model.Appointment{}).
		Where("status = ?", model.AppointmentStatusPending).
		Count(&pendingCount)
	db.Model(&model.Appointment{}).
		Where("date = ?", today).
		Count(&todayCount)

	var pending []model.Appointment
	if err := db.Where("status = ?", model.AppointmentStatusPending).
		Order("date asc, time asc").
		Limit(50).
		Find(&pending).Error; err != nil {
		log.Printf("Could not fetch pending appointments for digest: %v", err)
		return
	}

	data := email.AppointmentDigestData{
		Date:         time.Now(),
		PendingCount: pendingCount,
		TodayCount:   todayCount,
	}
	for _, apt := range pending {
		data.Appointments = append(data.Appointments, email.AppointmentNotificationData{
			CustomerName: apt.CustomerName,
			Phone:        apt.Phone,
			Email:        apt.Email,
			Service:      apt.Service,
			Date:         apt.Date,
			Time:         apt.Time,
			Notes:        apt.Notes,
		})
	}

	if err := emailService.SendAppointmentDigest(garageInbox, data); err != nil {
		log.Printf("Could not send appointment digest: %v", err)
		return
	}

	log.Printf("Appointment digest sent: %d pending, %d today", pendingCount, todayCount)
}

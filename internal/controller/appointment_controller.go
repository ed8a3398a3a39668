package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bdgaraj_backend/internal/model"
	"bdgaraj_backend/pkg/database"
	"bdgaraj_backend/pkg/email"
	"bdgaraj_backend/pkg/whatsapp"
)

type AppointmentInput struct {
	CustomerName string `json:"customer_name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Service      string `json:"service" validate:"required"`
	Date         string `json:"date" validate:"required"` // YYYY-MM-DD
	Time         string `json:"time" validate:"required"` // HH:MM
	Notes        string `json:"notes"`
}

type AppointmentUpdateInput struct {
	Status *model.AppointmentStatus `json:"status"`
	Notes  *string                  `json:"notes"`
}

var (
	appointmentNotifier *whatsapp.Notifier
	garageInbox         string
)

func InitAppointmentController(notifier *whatsapp.Notifier, inbox string) {
	appointmentNotifier = notifier
	garageInbox = inbox
}

// CreateAppointment public randevu formu. Kayıt her zaman pending başlar,
// garaja WhatsApp ve e-posta bildirimi gider.
func CreateAppointment(c *fiber.Ctx) error {
	input := new(AppointmentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.CustomerName == "" || input.Phone == "" || input.Email == "" ||
		input.Service == "" || input.Date == "" || input.Time == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "customer_name, phone, email, service, date and time are required",
		})
	}

	appointment := model.Appointment{
		CustomerName: input.CustomerName,
		Phone:        input.Phone,
		Email:        input.Email,
		Service:      input.Service,
		Date:         input.Date,
		Time:         input.Time,
		Notes:        input.Notes,
		Status:       model.AppointmentStatusPending,
	}

	if err := database.GetDB().Create(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create appointment",
		})
	}

	if appointmentNotifier != nil {
		message := whatsapp.AppointmentMessage(
			appointment.CustomerName,
			appointment.Phone,
			appointment.Email,
			appointment.Service,
			appointment.Date,
			appointment.Time,
			appointment.Notes,
			appointment.ID,
		)
		if err := appointmentNotifier.Send(message); err != nil {
			log.Printf("WhatsApp error: %v", err)
		}
	}

	if email.GlobalEmailService != nil && garageInbox != "" {
		err := email.GlobalEmailService.SendAppointmentNotification(garageInbox, email.AppointmentNotificationData{
			CustomerName: appointment.CustomerName,
			Phone:        appointment.Phone,
			Email:        appointment.Email,
			Service:      appointment.Service,
			Date:         appointment.Date,
			Time:         appointment.Time,
			Notes:        appointment.Notes,
		})
		if err != nil {
			log.Printf("Could not send appointment notification email: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// GetAppointments admin randevu listesi, en yeni önce.
func GetAppointments(c *fiber.Ctx) error {
	var appointments []model.Appointment
	query := database.GetDB().Order("created_at desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch appointments",
		})
	}

	return c.JSON(appointments)
}

func GetAppointment(c *fiber.Ctx) error {
	id := c.Params("id")

	var appointment model.Appointment
	if err := database.GetDB().First(&appointment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Appointment not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch appointment",
		})
	}

	return c.JSON(appointment)
}

// UpdateAppointment sadece status ve notes alanlarını günceller.
func UpdateAppointment(c *fiber.Ctx) error {
	id := c.Params("id")

	var appointment model.Appointment
	if err := database.GetDB().First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}

	input := new(AppointmentUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	updates := map[string]interface{}{}
	if input.Status != nil {
		if !model.ValidAppointmentStatus(*input.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid status value",
				"valid_statuses": []string{
					string(model.AppointmentStatusPending),
					string(model.AppointmentStatusConfirmed),
					string(model.AppointmentStatusCancelled),
				},
			})
		}
		updates["status"] = *input.Status
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}

	if len(updates) > 0 {
		if err := database.GetDB().Model(&appointment).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not update appointment",
			})
		}
	}

	database.GetDB().First(&appointment, id)
	return c.JSON(appointment)
}

func DeleteAppointment(c *fiber.Ctx) error {
	id := c.Params("id")

	var appointment model.Appointment
	if err := database.GetDB().First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}

	if err := database.GetDB().Delete(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete appointment",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Appointment deleted successfully",
	})
}

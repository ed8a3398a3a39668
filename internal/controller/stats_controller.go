package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"bdgaraj_backend/internal/model"
	"bdgaraj_backend/pkg/database"
)

// DashboardStats admin panelinin üst kartlarındaki sayaçlar.
type DashboardStats struct {
	TotalAppointments   int64 `json:"total_appointments"`
	PendingAppointments int64 `json:"pending_appointments"`
	TodayAppointments   int64 `json:"today_appointments"`
	TotalBlogPosts      int64 `json:"total_blog_posts"`
	TotalServices       int64 `json:"total_services"`
	ActiveProducts      int64 `json:"active_products"`
	PendingComments     int64 `json:"pending_comments"`
}

func GetDashboardStats(c *fiber.Ctx) error {
	db := database.GetDB()
	stats := DashboardStats{}

	db.Model(&model.Appointment{}).Count(&stats.TotalAppointments)
	db.Model(&model.Appointment{}).
		Where("status = ?", model.AppointmentStatusPending).
		Count(&stats.PendingAppointments)
	db.Model(&model.Appointment{}).
		Where("date = ?", time.Now().Format("2006-01-02")).
		Count(&stats.TodayAppointments)
	db.Model(&model.BlogPost{}).Count(&stats.TotalBlogPosts)
	db.Model(&model.Service{}).Count(&stats.TotalServices)
	db.Model(&model.Product{}).
		Where("status = ?", model.ProductStatusActive).
		Count(&stats.ActiveProducts)
	db.Model(&model.Comment{}).
		Where("status = ?", model.CommentStatusPending).
		Count(&stats.PendingComments)

	return c.JSON(stats)
}

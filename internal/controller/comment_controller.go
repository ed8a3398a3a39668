package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"bdgaraj_backend/internal/model"
	"bdgaraj_backend/pkg/database"
	"bdgaraj_backend/pkg/email"
)

type CommentInput struct {
	UserName    string `json:"user_name" validate:"required"`
	UserEmail   string `json:"user_email" validate:"required,email"`
	ServiceID   uint   `json:"service_id"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	CommentText string `json:"comment_text" validate:"required"`
}

// CreateComment public yorum gönderimi. Status her zaman pending başlar,
// istekte gelen status değeri yok sayılır.
func CreateComment(c *fiber.Ctx) error {
	input := new(CommentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.UserName == "" || input.UserEmail == "" || input.CommentText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_name, user_email and comment_text are required",
		})
	}
	if input.Rating < 1 || input.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "rating must be between 1 and 5",
		})
	}

	comment := model.Comment{
		UserName:    input.UserName,
		UserEmail:   input.UserEmail,
		ServiceID:   input.ServiceID,
		Rating:      input.Rating,
		CommentText: input.CommentText,
		Status:      model.CommentStatusPending,
	}

	if err := database.GetDB().Create(&comment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create comment",
		})
	}

	if email.GlobalEmailService != nil && garageInbox != "" {
		serviceName := ""
		var service model.Service
		if err := database.GetDB().First(&service, comment.ServiceID).Error; err == nil {
			serviceName = service.Name
		}
		err := email.GlobalEmailService.SendCommentNotification(garageInbox, email.CommentNotificationData{
			UserName:    comment.UserName,
			ServiceName: serviceName,
			Rating:      comment.Rating,
			CommentText: comment.CommentText,
		})
		if err != nil {
			log.Printf("Could not send comment notification email: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Your comment has been submitted and is awaiting approval.",
		"comment": comment,
	})
}

// GetApprovedComments public liste; sadece onaylı yorumlar döner,
// service_id verilirse o hizmete filtrelenir.
func GetApprovedComments(c *fiber.Ctx) error {
	query := database.GetDB().
		Where("status = ?", model.CommentStatusApproved).
		Order("created_at desc")

	if serviceID := c.Query("service_id"); serviceID != "" {
		query = query.Where("service_id = ?", serviceID)
	}

	var comments []model.Comment
	if err := query.Find(&comments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch comments",
		})
	}

	return c.JSON(comments)
}

// GetCommentsAdmin moderasyon kuyruğu; service_id ve status filtreleri
// sunucu tarafında uygulanır, filtre değişimi yeni fetch demektir.
func GetCommentsAdmin(c *fiber.Ctx) error {
	query := database.GetDB().Order("created_at desc")

	if serviceID := c.Query("service_id"); serviceID != "" {
		query = query.Where("service_id = ?", serviceID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var comments []model.Comment
	if err := query.Find(&comments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch comments",
		})
	}

	return c.JSON(comments)
}

// UpdateCommentStatus herhangi bir status'ten herhangi birine geçiş yapabilir.
func UpdateCommentStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var comment model.Comment
	if err := database.GetDB().First(&comment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Comment not found",
		})
	}

	input := struct {
		Status model.CommentStatus `json:"status"`
	}{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if !model.ValidCommentStatus(input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status value",
			"valid_statuses": []string{
				string(model.CommentStatusPending),
				string(model.CommentStatusApproved),
				string(model.CommentStatusRejected),
			},
		})
	}

	if err := database.GetDB().Model(&comment).Update("status", input.Status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update comment status",
		})
	}

	database.GetDB().First(&comment, id)
	return c.JSON(comment)
}

func DeleteComment(c *fiber.Ctx) error {
	id := c.Params("id")

	var comment model.Comment
	if err := database.GetDB().First(&comment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Comment not found",
		})
	}

	if err := database.GetDB().Delete(&comment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete comment",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Comment deleted successfully",
	})
}

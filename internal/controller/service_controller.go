package controller

import (
	"github.com/gofiber/fiber/v2"

	"bdgaraj_backend/internal/model"
	"bdgaraj_backend/pkg/database"
)

type ServiceInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon"`
	ImageURL    string `json:"image_url"`
}

// GetServices public hizmet listesi; randevu formunun dropdown'ı da
// buradan beslenir.
func GetServices(c *fiber.Ctx) error {
	var services []model.Service
	if err := database.GetDB().Order("created_at asc").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch services",
		})
	}

	return c.JSON(services)
}

func CreateService(c *fiber.Ctx) error {
	input := new(ServiceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Name == "" || input.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name and description are required",
		})
	}

	service := model.Service{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		ImageURL:    input.ImageURL,
	}

	if err := database.GetDB().Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create service",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService tam form payload'ı ile kaydı değiştirir. Hizmet adının
// değişmesi mevcut randevulardaki isimleri etkilemez (zayıf referans).
func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")

	var service model.Service
	if err := database.GetDB().First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	input := new(ServiceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	service.Name = input.Name
	service.Description = input.Description
	service.Icon = input.Icon
	service.ImageURL = input.ImageURL

	if err := database.GetDB().Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update service",
		})
	}

	return c.JSON(service)
}

func DeleteService(c *fiber.Ctx) error {
	id := c.Params("id")

	var service model.Service
	if err := database.GetDB().First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	if err := database.GetDB().Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete service",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Service deleted successfully",
	})
}

package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	imageutil "bdgaraj_backend/pkg/utils/image"
	"bdgaraj_backend/pkg/utils/storage"
	"bdgaraj_backend/pkg/utils/validation"
)

// UploadServiceImage hizmet görseli yükler ve kalıcı URL'i döner.
func UploadServiceImage(c *fiber.Ctx) error {
	return uploadImage(c, "services")
}

// UploadProductImage ilan görseli yükler ve kalıcı URL'i döner.
func UploadProductImage(c *fiber.Ctx) error {
	return uploadImage(c, "products")
}

func uploadImage(c *fiber.Ctx, prefix string) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	if err := validation.ValidateImage(file); err != nil {
		switch {
		case errors.Is(err, validation.ErrFileSize):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "File size too large. Maximum size is 5MB",
			})
		case errors.Is(err, validation.ErrFileType):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Only JPEG, PNG, WEBP and GIF files are allowed",
			})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	buf, contentType, err := imageutil.ProcessImage(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not process image",
		})
	}

	key := storage.ObjectKey(prefix, file.Filename)
	url, err := storage.Get().Save(key, buf, contentType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save file",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Image uploaded successfully",
		"url":     url,
	})
}

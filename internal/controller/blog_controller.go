package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bdgaraj_backend/internal/model"
	"bdgaraj_backend/pkg/database"
)

type BlogPostInput struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Author   string `json:"author"`
	ImageURL string `json:"image_url"`
}

// GetBlogPosts public blog listesi, en yeni önce.
func GetBlogPosts(c *fiber.Ctx) error {
	var posts []model.BlogPost
	if err := database.GetDB().Order("created_at desc").Find(&posts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch blog posts",
		})
	}

	return c.JSON(posts)
}

func GetBlogPost(c *fiber.Ctx) error {
	id := c.Params("id")

	var post model.BlogPost
	if err := database.GetDB().First(&post, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Blog post not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch blog post",
		})
	}

	return c.JSON(post)
}

func CreateBlogPost(c *fiber.Ctx) error {
	input := new(BlogPostInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Title == "" || input.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title and content are required",
		})
	}

	post := model.BlogPost{
		Title:    input.Title,
		Content:  input.Content,
		Author:   input.Author,
		ImageURL: input.ImageURL,
	}
	if post.Author == "" {
		post.Author = "BD Garaj"
	}

	if err := database.GetDB().Create(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create blog post",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdateBlogPost tam form payload'ı ile kaydı değiştirir (partial patch değil).
func UpdateBlogPost(c *fiber.Ctx) error {
	id := c.Params("id")

	var post model.BlogPost
	if err := database.GetDB().First(&post, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Blog post not found",
		})
	}

	input := new(BlogPostInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	post.Title = input.Title
	post.Content = input.Content
	if input.Author != "" {
		post.Author = input.Author
	}
	post.ImageURL = input.ImageURL

	if err := database.GetDB().Save(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update blog post",
		})
	}

	return c.JSON(post)
}

func DeleteBlogPost(c *fiber.Ctx) error {
	id := c.Params("id")

	var post model.BlogPost
	if err := database.GetDB().First(&post, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Blog post not found",
		})
	}

	if err := database.GetDB().Delete(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete blog post",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Blog post deleted successfully",
	})
}

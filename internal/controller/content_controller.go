package controller

import (
	"github.com/gofiber/fiber/v2"

	"bdgaraj_backend/internal/model"
	"bdgaraj_backend/pkg/database"
)

// Ana sayfa içerik yönetimi: features, testimonials, FAQ listeleri ve
// contact-info / cta-section tekil kayıtları.

type FeatureInput struct {
	Icon        string `json:"icon"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type TestimonialInput struct {
	Name    string `json:"name" validate:"required"`
	Comment string `json:"comment" validate:"required"`
	Rating  int    `json:"rating"`
	Order   int    `json:"order"`
}

type FAQInput struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Order    int    `json:"order"`
}

type ContactInfoInput struct {
	Phone          string `json:"phone"`
	WhatsApp       string `json:"whatsapp"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	MapURL         string `json:"map_url"`
	WorkingHours   string `json:"working_hours"`
	EmergencyPhone string `json:"emergency_phone"`
}

type CTASectionInput struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"button_text"`
}

// ---- Features ----

func GetFeatures(c *fiber.Ctx) error {
	var features []model.Feature
	if err := database.GetDB().Order(`"order" asc, created_at asc`).Find(&features).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch features",
		})
	}
	return c.JSON(features)
}

func CreateFeature(c *fiber.Ctx) error {
	input := new(FeatureInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}

	feature := model.Feature{
		Icon:        input.Icon,
		Title:       input.Title,
		Description: input.Description,
		Order:       input.Order,
	}
	if err := database.GetDB().Create(&feature).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create feature"})
	}
	return c.Status(fiber.StatusCreated).JSON(feature)
}

func UpdateFeature(c *fiber.Ctx) error {
	id := c.Params("id")

	var feature model.Feature
	if err := database.GetDB().First(&feature, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Feature not found"})
	}

	input := new(FeatureInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	feature.Icon = input.Icon
	feature.Title = input.Title
	feature.Description = input.Description
	feature.Order = input.Order

	if err := database.GetDB().Save(&feature).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update feature"})
	}
	return c.JSON(feature)
}

func DeleteFeature(c *fiber.Ctx) error {
	id := c.Params("id")

	var feature model.Feature
	if err := database.GetDB().First(&feature, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Feature not found"})
	}
	if err := database.GetDB().Delete(&feature).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete feature"})
	}
	return c.JSON(fiber.Map{"message": "Feature deleted successfully"})
}

// ---- Testimonials ----

func GetTestimonials(c *fiber.Ctx) error {
	var testimonials []model.Testimonial
	if err := database.GetDB().Order(`"order" asc, created_at asc`).Find(&testimonials).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch testimonials",
		})
	}
	return c.JSON(testimonials)
}

func CreateTestimonial(c *fiber.Ctx) error {
	input := new(TestimonialInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if input.Name == "" || input.Comment == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name and comment are required"})
	}
	if input.Rating < 1 || input.Rating > 5 {
		input.Rating = 5
	}

	testimonial := model.Testimonial{
		Name:    input.Name,
		Comment: input.Comment,
		Rating:  input.Rating,
		Order:   input.Order,
	}
	if err := database.GetDB().Create(&testimonial).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create testimonial"})
	}
	return c.Status(fiber.StatusCreated).JSON(testimonial)
}

func UpdateTestimonial(c *fiber.Ctx) error {
	id := c.Params("id")

	var testimonial model.Testimonial
	if err := database.GetDB().First(&testimonial, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Testimonial not found"})
	}

	input := new(TestimonialInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if input.Rating < 1 || input.Rating > 5 {
		input.Rating = 5
	}

	testimonial.Name = input.Name
	testimonial.Comment = input.Comment
	testimonial.Rating = input.Rating
	testimonial.Order = input.Order

	if err := database.GetDB().Save(&testimonial).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update testimonial"})
	}
	return c.JSON(testimonial)
}

func DeleteTestimonial(c *fiber.Ctx) error {
	id := c.Params("id")

	var testimonial model.Testimonial
	if err := database.GetDB().First(&testimonial, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Testimonial not found"})
	}
	if err := database.GetDB().Delete(&testimonial).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete testimonial"})
	}
	return c.JSON(fiber.Map{"message": "Testimonial deleted successfully"})
}

// ---- FAQs ----

func GetFAQs(c *fiber.Ctx) error {
	var faqs []model.FAQ
	if err := database.GetDB().Order(`"order" asc, created_at asc`).Find(&faqs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch FAQs",
		})
	}
	return c.JSON(faqs)
}

func CreateFAQ(c *fiber.Ctx) error {
	input := new(FAQInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if input.Question == "" || input.Answer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "question and answer are required"})
	}

	faq := model.FAQ{
		Question: input.Question,
		Answer:   input.Answer,
		Order:    input.Order,
	}
	if err := database.GetDB().Create(&faq).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create FAQ"})
	}
	return c.Status(fiber.StatusCreated).JSON(faq)
}

func UpdateFAQ(c *fiber.Ctx) error {
	id := c.Params("id")

	var faq model.FAQ
	if err := database.GetDB().First(&faq, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "FAQ not found"})
	}

	input := new(FAQInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	faq.Question = input.Question
	faq.Answer = input.Answer
	faq.Order = input.Order

	if err := database.GetDB().Save(&faq).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update FAQ"})
	}
	return c.JSON(faq)
}

func DeleteFAQ(c *fiber.Ctx) error {
	id := c.Params("id")

	var faq model.FAQ
	if err := database.GetDB().First(&faq, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "FAQ not found"})
	}
	if err := database.GetDB().Delete(&faq).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete FAQ"})
	}
	return c.JSON(fiber.Map{"message": "FAQ deleted successfully"})
}

// ---- Singletons ----

// GetContactInfo ilk erişimde boş kaydı oluşturup döner.
func GetContactInfo(c *fiber.Ctx) error {
	var info model.ContactInfo
	if err := database.GetDB().FirstOrCreate(&info, model.ContactInfo{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch contact info",
		})
	}
	return c.JSON(info)
}

func UpdateContactInfo(c *fiber.Ctx) error {
	input := new(ContactInfoInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	var info model.ContactInfo
	if err := database.GetDB().FirstOrCreate(&info, model.ContactInfo{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch contact info",
		})
	}

	info.Phone = input.Phone
	info.WhatsApp = input.WhatsApp
	info.Email = input.Email
	info.Address = input.Address
	info.MapURL = input.MapURL
	info.WorkingHours = input.WorkingHours
	info.EmergencyPhone = input.EmergencyPhone

	if err := database.GetDB().Save(&info).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update contact info"})
	}
	return c.JSON(info)
}

func GetCTASection(c *fiber.Ctx) error {
	var cta model.CTASection
	if err := database.GetDB().FirstOrCreate(&cta, model.CTASection{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch CTA section",
		})
	}
	return c.JSON(cta)
}

func UpdateCTASection(c *fiber.Ctx) error {
	input := new(CTASectionInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	var cta model.CTASection
	if err := database.GetDB().FirstOrCreate(&cta, model.CTASection{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch CTA section",
		})
	}

	cta.Title = input.Title
	cta.Subtitle = input.Subtitle
	cta.ButtonText = input.ButtonText

	if err := database.GetDB().Save(&cta).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update CTA section"})
	}
	return c.JSON(cta)
}

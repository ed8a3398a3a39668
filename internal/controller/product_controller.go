package controller

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bdgaraj_backend/internal/model"
	"bdgaraj_backend/pkg/database"
)

type ProductInput struct {
	Category     model.ProductCategory `json:"category" validate:"required"`
	Title        string                `json:"title" validate:"required"`
	Description  string                `json:"description"`
	Price        float64               `json:"price" validate:"required"`
	Currency     model.Currency        `json:"currency"`
	Status       model.ProductStatus   `json:"status"`
	ContactPhone string                `json:"contact_phone"`
	ContactEmail string                `json:"contact_email"`
	Images       []string              `json:"images"`
	Specs        map[string]string     `json:"specs"`
}

func (in *ProductInput) validate() (string, bool) {
	if in.Title == "" {
		return "title is required", false
	}
	if !model.ValidProductCategory(in.Category) {
		return "Invalid category value", false
	}
	if in.Currency == "" {
		in.Currency = model.CurrencyTRY
	} else if !model.ValidCurrency(in.Currency) {
		return "Invalid currency value", false
	}
	if in.Status == "" {
		in.Status = model.ProductStatusActive
	} else if !model.ValidProductStatus(in.Status) {
		return "Invalid status value", false
	}
	return "", true
}

func (in *ProductInput) apply(product *model.Product) error {
	if in.Images == nil {
		in.Images = []string{}
	}
	imagesJSON, err := json.Marshal(in.Images)
	if err != nil {
		return err
	}

	specs := datatypes.JSONMap{}
	for k, v := range in.Specs {
		specs[k] = v
	}

	product.Category = in.Category
	product.Title = in.Title
	product.Description = in.Description
	product.Price = in.Price
	product.Currency = in.Currency
	product.Status = in.Status
	product.ContactPhone = in.ContactPhone
	product.ContactEmail = in.ContactEmail
	product.Images = datatypes.JSON(imagesJSON)
	product.Specs = specs
	return nil
}

// GetProducts public ürün listesi; category ve status query parametreleri
// sorguya AND'lenir. Filtre değişimi yeni bir fetch tetikler, client
// tarafında listeye merge yapılmaz.
func GetProducts(c *fiber.Ctx) error {
	query := database.GetDB().Order("created_at desc")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch products",
		})
	}

	return c.JSON(products)
}

func GetProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var product model.Product
	if err := database.GetDB().First(&product, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch product",
		})
	}

	return c.JSON(product)
}

func CreateProduct(c *fiber.Ctx) error {
	input := new(ProductInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if msg, ok := input.validate(); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	var product model.Product
	if err := input.apply(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid images payload",
		})
	}

	if err := database.GetDB().Create(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct tam form payload'ı ile kaydı değiştirir.
func UpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var product model.Product
	if err := database.GetDB().First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	input := new(ProductInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if msg, ok := input.validate(); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	if err := input.apply(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid images payload",
		})
	}

	if err := database.GetDB().Save(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update product",
		})
	}

	return c.JSON(product)
}

func DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var product model.Product
	if err := database.GetDB().First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	if err := database.GetDB().Delete(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete product",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bdgaraj_backend/internal/middleware"
	"bdgaraj_backend/internal/model"
	"bdgaraj_backend/pkg/database"
	"bdgaraj_backend/pkg/utils/jwt"
)

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// Login admin girişi; başarılı girişte bearer token döner.
func Login(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var admin model.Admin
	if err := database.GetDB().Where("username = ?", input.Username).First(&admin).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Incorrect username or password",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Incorrect username or password",
		})
	}

	token, err := jwt.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}

	history := model.LoginHistory{
		AdminID:   admin.ID,
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
	}
	if err := database.GetDB().Create(&history).Error; err != nil {
		log.Printf("Could not record login history: %v", err)
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Verify session guard'ın route girişinde çağırdığı token doğrulaması.
// Middleware'den geçebilmiş her istek geçerlidir; ek olarak admin
// kaydının hâlâ var olduğu kontrol edilir.
func Verify(c *fiber.Ctx) error {
	claims := c.Locals(middleware.CtxAdminKey).(*jwt.Claims)

	var admin model.Admin
	if err := database.GetDB().First(&admin, claims.AdminID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Admin not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch admin",
		})
	}

	return c.JSON(fiber.Map{
		"username": admin.Username,
		"valid":    true,
	})
}

// RegisterAdmin yeni admin oluşturur; sadece mevcut adminler çağırabilir.
func RegisterAdmin(c *fiber.Ctx) error {
	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var existing model.Admin
	if err := database.GetDB().Where("username = ?", input.Username).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username already exists",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not hash password",
		})
	}

	admin := model.Admin{
		Username: input.Username,
		Password: string(hashedPassword),
	}

	if err := database.GetDB().Create(&admin).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create admin",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":       admin.ID,
		"username": admin.Username,
	})
}

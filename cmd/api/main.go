package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"bdgaraj_backend/internal/controller"
	"bdgaraj_backend/internal/middleware"
	"bdgaraj_backend/internal/model"
	"bdgaraj_backend/pkg/config"
	"bdgaraj_backend/pkg/cron"
	"bdgaraj_backend/pkg/database"
	"bdgaraj_backend/pkg/email"
	"bdgaraj_backend/pkg/seed"
	"bdgaraj_backend/pkg/utils/storage"
	"bdgaraj_backend/pkg/whatsapp"
)

func setupRoutes(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api")

	// Health check
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "BD Garaj API is running",
			"status":  "ok",
		})
	})

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/login", controller.Login)
	auth.Get("/verify", middleware.AuthMiddleware(), controller.Verify)
	auth.Post("/register", middleware.AuthMiddleware(), controller.RegisterAdmin)

	// Appointments: create public, yönetim admin
	api.Post("/appointments", controller.CreateAppointment)
	appointments := api.Group("/appointments", middleware.AuthMiddleware())
	appointments.Get("/", controller.GetAppointments)
	appointments.Get("/:id", controller.GetAppointment)
	appointments.Put("/:id", controller.UpdateAppointment)
	appointments.Delete("/:id", controller.DeleteAppointment)

	// Blog: okuma public, yazma admin
	api.Get("/blog", controller.GetBlogPosts)
	api.Get("/blog/:id", controller.GetBlogPost)
	blog := api.Group("/blog", middleware.AuthMiddleware())
	blog.Post("/", controller.CreateBlogPost)
	blog.Put("/:id", controller.UpdateBlogPost)
	blog.Delete("/:id", controller.DeleteBlogPost)

	// Services
	api.Get("/services", controller.GetServices)
	services := api.Group("/services", middleware.AuthMiddleware())
	services.Post("/", controller.CreateService)
	services.Put("/:id", controller.UpdateService)
	services.Delete("/:id", controller.DeleteService)

	// Products (OTO-MOTO alım satım)
	api.Get("/products", controller.GetProducts)
	api.Get("/products/:id", controller.GetProduct)
	products := api.Group("/products", middleware.AuthMiddleware())
	products.Post("/", controller.CreateProduct)
	products.Put("/:id", controller.UpdateProduct)
	products.Delete("/:id", controller.DeleteProduct)

	// Ana sayfa içerikleri
	api.Get("/features", controller.GetFeatures)
	features := api.Group("/features", middleware.AuthMiddleware())
	features.Post("/", controller.CreateFeature)
	features.Put("/:id", controller.UpdateFeature)
	features.Delete("/:id", controller.DeleteFeature)

	api.Get("/testimonials", controller.GetTestimonials)
	testimonials := api.Group("/testimonials", middleware.AuthMiddleware())
	testimonials.Post("/", controller.CreateTestimonial)
	testimonials.Put("/:id", controller.UpdateTestimonial)
	testimonials.Delete("/:id", controller.DeleteTestimonial)

	api.Get("/faqs", controller.GetFAQs)
	faqs := api.Group("/faqs", middleware.AuthMiddleware())
	faqs.Post("/", controller.CreateFAQ)
	faqs.Put("/:id", controller.UpdateFAQ)
	faqs.Delete("/:id", controller.DeleteFAQ)

	// Singletons
	api.Get("/contact-info", controller.GetContactInfo)
	api.Put("/contact-info", middleware.AuthMiddleware(), controller.UpdateContactInfo)
	api.Get("/cta-section", controller.GetCTASection)
	api.Put("/cta-section", middleware.AuthMiddleware(), controller.UpdateCTASection)

	// Comments: gönderim ve onaylı liste public, moderasyon admin
	api.Post("/comments", controller.CreateComment)
	api.Get("/comments", controller.GetApprovedComments)
	comments := api.Group("/comments", middleware.AuthMiddleware())
	comments.Get("/admin", controller.GetCommentsAdmin)
	comments.Put("/:id/status", controller.UpdateCommentStatus)
	comments.Delete("/:id", controller.DeleteComment)

	// Image uploads
	upload := api.Group("/upload", middleware.AuthMiddleware())
	upload.Post("/service-image", controller.UploadServiceImage)
	upload.Post("/product-image", controller.UploadProductImage)

	// Dashboard
	api.Get("/stats/dashboard", middleware.AuthMiddleware(), controller.GetDashboardStats)
}

func main() {
	cfg := config.Load()

	if cfg.Email.APIKey != "" {
		if err := email.InitEmailService(cfg.Email.APIKey, cfg.Email.From); err != nil {
			log.Fatal("Could not initialize email service:", err)
		}
	} else {
		log.Println("RESEND_API_KEY not set, email notifications disabled")
	}

	if err := storage.Init(cfg.Storage); err != nil {
		log.Fatal("Could not initialize storage:", err)
	}

	database.InitDB(cfg.Database.URL)
	err := database.MigrateDatabase(
		&model.Admin{},
		&model.LoginHistory{},
		&model.Appointment{},
		&model.BlogPost{},
		&model.Service{},
		&model.Product{},
		&model.Feature{},
		&model.Testimonial{},
		&model.FAQ{},
		&model.ContactInfo{},
		&model.CTASection{},
		&model.Comment{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	db := database.GetDB()
	seed.SeedDefaultAdmin(db)
	seed.SeedDefaultServices(db)
	seed.SeedDefaultContent(db)

	notifier := whatsapp.NewNotifier(cfg.WhatsApp.Enabled, cfg.WhatsApp.GarageNumber)
	controller.InitAppointmentController(notifier, cfg.Email.GarageInbox)
	cron.InitAppointmentDigestCron(email.GlobalEmailService, cfg.Email.GarageInbox)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 5MB görseller + multipart overhead
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Local storage driver'da yüklenen dosyaları servis et
	if cfg.Storage.Driver == "local" {
		app.Static(cfg.Storage.PublicURL, cfg.Storage.LocalDir)
	}

	setupRoutes(app, cfg)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}

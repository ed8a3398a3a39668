package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Storage  StorageConfig
	WhatsApp WhatsAppConfig
	Email    EmailConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins string
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret string
}

type StorageConfig struct {
	Driver    string // "local" veya "s3"
	LocalDir  string
	PublicURL string // local driver'da dosyaların servis edildiği base URL
	Bucket    string
	Region    string
	Endpoint  string // R2 gibi S3-uyumlu servisler için opsiyonel
	AccessKey string
	SecretKey string
}

type WhatsAppConfig struct {
	Enabled      bool
	GarageNumber string
}

type EmailConfig struct {
	APIKey      string
	From        string
	GarageInbox string
}

func Load() *Config {
	godotenv.Load() // .env dosyasını yükle

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "3000"),
			CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		Storage: StorageConfig{
			Driver:    getEnv("STORAGE_DRIVER", "local"),
			LocalDir:  getEnv("STORAGE_LOCAL_DIR", "./uploads"),
			PublicURL: getEnv("STORAGE_PUBLIC_URL", "/uploads"),
			Bucket:    getEnv("STORAGE_BUCKET", "bdgaraj-images"),
			Region:    getEnv("STORAGE_REGION", "eu-central-1"),
			Endpoint:  getEnv("STORAGE_ENDPOINT", ""),
			AccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey: getEnv("STORAGE_SECRET_KEY", ""),
		},
		WhatsApp: WhatsAppConfig{
			Enabled:      getEnv("WHATSAPP_ENABLED", "false") == "true",
			GarageNumber: getEnv("BD_GARAJ_WHATSAPP", "905326832603"),
		},
		Email: EmailConfig{
			APIKey:      getEnv("RESEND_API_KEY", ""),
			From:        getEnv("EMAIL_FROM", "BD Garaj <noreply@bdgaraj.com>"),
			GarageInbox: getEnv("BD_GARAJ_EMAIL", "bdgaraj1@gmail.com"),
		},
	}

	// Production güvenlik kontrolleri
	if cfg.JWT.Secret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış!")
	}
	if cfg.Database.URL == "" {
		log.Fatal("[FATAL] DATABASE_URL environment değişkeni tanımlanmamış!")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

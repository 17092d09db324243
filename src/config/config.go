package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port               string
	LogLevel           string
	WebhookBaseURL     string
	AllowedOrigin      string
	MaxUploadSizeBytes int64
	ListCacheTTL       time.Duration
}

var Cfg *AppConfig

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	webhookBaseURL := getEnv("WEBHOOK_BASE_URL", "https://your-n8n-instance.com/webhook")
	if webhookBaseURL == "https://your-n8n-instance.com/webhook" {
		log.Println("WARNING: Using placeholder WEBHOOK_BASE_URL. Set WEBHOOK_BASE_URL to your workflow webhook base URL.")
	}
	webhookBaseURL = strings.TrimRight(webhookBaseURL, "/")

	maxUploadSizeBytesStr := getEnv("MAX_UPLOAD_SIZE_BYTES", "10485760")
	maxUploadSizeBytes, err := strconv.ParseInt(maxUploadSizeBytesStr, 10, 64)
	if err != nil {
		log.Printf("WARNING: Invalid MAX_UPLOAD_SIZE_BYTES format '%s'. Using default 10MB. Error: %v", maxUploadSizeBytesStr, err)
		maxUploadSizeBytes = 10 * 1024 * 1024
	}

	listCacheTTLStr := getEnv("LIST_CACHE_TTL", "1m")
	listCacheTTL, err := time.ParseDuration(listCacheTTLStr)
	if err != nil {
		log.Printf("WARNING: Invalid LIST_CACHE_TTL format '%s'. Using default 1m. Error: %v", listCacheTTLStr, err)
		listCacheTTL = time.Minute
	}

	Cfg = &AppConfig{
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		WebhookBaseURL:     webhookBaseURL,
		AllowedOrigin:      getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		MaxUploadSizeBytes: maxUploadSizeBytes,
		ListCacheTTL:       listCacheTTL,
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, WebhookBaseURL=%s",
		Cfg.Port, Cfg.LogLevel, Cfg.WebhookBaseURL)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

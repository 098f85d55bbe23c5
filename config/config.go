package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	// DatabaseURL is optional; without it the service keeps state in memory.
	DatabaseURL string

	JWTSecretKey string

	// AdminPasswordHash is a bcrypt hash; AdminPassword is hashed at startup
	// when no hash is given.
	AdminPasswordHash string
	AdminPassword     string

	ServerPort         int
	ScheduleConfigPath string
	AllowedOrigins     []string

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load()

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminHash == "" && adminPassword == "" {
		return nil, fmt.Errorf("either ADMIN_PASSWORD_HASH or ADMIN_PASSWORD must be set")
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		JWTSecretKey:       jwtKey,
		AdminPasswordHash:  adminHash,
		AdminPassword:      adminPassword,
		ServerPort:         port,
		ScheduleConfigPath: os.Getenv("SCHEDULE_CONFIG_PATH"),
		AllowedOrigins:     splitList(os.Getenv("CORS_ALLOWED_ORIGINS"), []string{"*"}),
		R2AccountID:        os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:      os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey:  os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:       os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:    os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	return cfg, nil
}

func splitList(value string, fallback []string) []string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}

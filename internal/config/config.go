package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const envFile = ".env"

// AppConfig collects the settings needed to run the portfolio server.
type AppConfig struct {
	ListenAddr        string
	Port              string
	DatabaseURL       string
	SecretKey         string
	GinMode           string
	SiteBaseURL       string
	LogLevel          string
	AdminUsername     string
	AdminPasswordHash string
	SecureCookies     bool
	SMTP              SMTPConfig
}

// SMTPConfig holds the relay settings used for notification emails.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	MailTo   string
	MailFrom string
}

// Configured reports whether every value needed to talk to the relay is present.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.Port > 0 && c.Username != "" && c.Password != ""
}

// LoadDotEnv loads variables from .env when the file exists. Values already set
// in the process environment win.
func LoadDotEnv() {
	_ = godotenv.Load(envFile)
}

// Load reads the application configuration from environment variables and
// falls back to development defaults for anything missing.
func Load() AppConfig {
	port := getEnv("PORT", "5000")

	listenAddr := getEnv("LISTEN_ADDR", "")
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	smtpUser := getEnv("SMTP_USERNAME", "")

	return AppConfig{
		ListenAddr:        listenAddr,
		Port:              port,
		DatabaseURL:       getEnv("DATABASE_URL", "instance/portfolio.db"),
		SecretKey:         getEnv("SECRET_KEY", "dev-secret-key-change-me"),
		GinMode:           getEnv("GIN_MODE", "release"),
		SiteBaseURL:       strings.TrimRight(getEnv("SITE_BASE_URL", "https://www.sakhiya.dev"), "/"),
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", "info")),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		SecureCookies:     getEnvBool("SESSION_COOKIE_SECURE", false),
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: smtpUser,
			Password: getEnv("SMTP_PASSWORD", ""),
			MailTo:   getEnv("MAIL_TO", smtpUser),
			MailFrom: getEnv("MAIL_FROM", smtpUser),
		},
	}
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}

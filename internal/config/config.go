package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Database Configuration
	Database DatabaseConfig `json:"database"`

	// Outbound mail (SMTP relay)
	Email EmailConfig `json:"email"`

	// Development data seeding
	Seed SeedConfig `json:"seed"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port         string `json:"port"`
	Host         string `json:"host"`
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
	Environment  string `json:"environment"` // development, staging, production
}

// DatabaseConfig contains MySQL connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

// EmailConfig contains the SMTP relay credentials used by the mail
// dispatcher. Presence is not validated here; a misconfigured relay
// surfaces as a send failure at dispatch time.
type EmailConfig struct {
	SMTPHost  string `json:"smtp_host"`
	SMTPPort  int    `json:"smtp_port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FromEmail string `json:"from_email"`
	FromName  string `json:"from_name"`
	UseTLS    bool   `json:"use_tls"`
}

// SeedConfig toggles demo listing seeding on boot
type SeedConfig struct {
	DemoData bool `json:"demo_data"`
}

func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("PORT", "8080"),
			Host:         getEnvOrDefault("HOST", "0.0.0.0"),
			ReadTimeout:  getEnvOrDefaultInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvOrDefaultInt("SERVER_WRITE_TIMEOUT", 15),
			Environment:  getEnvOrDefault("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnvOrDefault("DB_HOST", "localhost"),
			Port:         getEnvOrDefault("DB_PORT", "3306"),
			Username:     getEnvOrDefault("DB_USER", "marketplace"),
			Password:     getEnvOrDefault("DB_PASSWORD", "marketplace123"),
			DatabaseName: getEnvOrDefault("DB_NAME", "marketplace_db"),
			MaxOpenConns: getEnvOrDefaultInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvOrDefaultInt("DB_MAX_IDLE_CONNS", 5),
		},
		Email: EmailConfig{
			SMTPHost:  getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:  getEnvOrDefaultInt("SMTP_PORT", 587),
			Username:  getEnvOrDefault("SMTP_USER", ""),
			Password:  getEnvOrDefault("SMTP_PASS", ""),
			FromEmail: getEnvOrDefault("FROM_EMAIL", "noreply@yourdomain.com"),
			FromName:  getEnvOrDefault("FROM_NAME", "Marketplace"),
			UseTLS:    getEnvOrDefault("SMTP_TLS", "true") == "true",
		},
		Seed: SeedConfig{
			DemoData: getEnvOrDefault("SEED_DEMO_DATA", "false") == "true",
		},
	}
}

// DSN builds the MySQL connection string from the database section
func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

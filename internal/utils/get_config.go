package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Server
	Port      string `yaml:"PORT"`
	AppURL    string `yaml:"APP_URL"`
	JWTSecret string `yaml:"JWT_SECRET"`

	// Cache safety-net TTL, e.g. "5m". Empty disables expiry.
	CacheTTL string `yaml:"CACHE_TTL"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

// GetConfig resolves a key from config.yaml, falling back to the environment
// so containerized deployments can skip the file entirely.
func GetConfig(key string) string {
	v := ""
	switch key {
	case "DB_USER":
		v = config.DBUser
	case "DB_NAME":
		v = config.DBName
	case "DB_PASSWORD":
		v = config.DBPassword
	case "DB_PORT":
		v = config.DBPort
	case "DB_HOST":
		v = config.DBHost
	case "PORT":
		v = config.Port
	case "APP_URL":
		v = config.AppURL
	case "JWT_SECRET":
		v = config.JWTSecret
	case "CACHE_TTL":
		v = config.CacheTTL
	case "SMTP_HOST":
		v = config.SMTPHost
	case "SMTP_PORT":
		v = config.SMTPPort
	case "SMTP_SENDER_NAME":
		v = config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		v = config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		v = config.SMTPAuthPassword
	}
	if v == "" {
		return os.Getenv(key)
	}
	return v
}

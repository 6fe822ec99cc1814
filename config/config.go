package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port         string
	DataDir      string
	MongoURI     string
	JWTSecret    string
	AllowOrigins []string
	SMTP         SMTPConfig
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "1414"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		MongoURI:     getEnv("MONGO_URI", ""),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		AllowOrigins: getEnvSlice("ALLOW_ORIGINS", []string{"http://localhost:3000"}),
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 465),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "receipts@localhost"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.Split(value, ",")
	}
	return fallback
}

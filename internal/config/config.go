package config

import (
	"os"
)

type Config struct {
	Port           string
	DBDriver       string
	DBPath         string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	SecretKey      string
	GinMode        string
	ServiceName    string
	ServiceVersion string
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBPath:         getEnv("DB_PATH", "aria_enhanced.db"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBUser:         getEnv("DB_USER", "aria"),
		DBPassword:     getEnv("DB_PASSWORD", "aria"),
		DBName:         getEnv("DB_NAME", "aria_enhanced"),
		SecretKey:      getEnv("SECRET_KEY", "aria-enhanced-secret-key-2024"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		ServiceName:    getEnv("SERVICE_NAME", "ARIA Enhanced"),
		ServiceVersion: getEnv("SERVICE_VERSION", "2.0.0"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

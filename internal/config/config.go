package config

import (
	"os"   // For environment variables
	"time" // For parsing the token lifetime

	"github.com/joho/godotenv"   // For loading .env files
	"github.com/sirupsen/logrus" // Logging library
)

// DefaultJWTSecret is the fallback signing key used when JWT_SECRET is unset.
// Running with it is insecure; a warning is logged at startup.
const DefaultJWTSecret = "your-secret-key"

// Config holds the application configuration
type Config struct {
	AppPort       string        // Application port
	DBUser        string        // Database user
	DBPassword    string        // Database password
	DBHost        string        // Database host
	DBPort        string        // Database port
	DBName        string        // Database name
	JWTSecret     string        // JWT signing key
	JWTExpiresIn  time.Duration // Token lifetime
	UploadDir     string        // Directory for uploaded images
	UploadBaseURL string        // Public URL prefix for uploaded images
	IsProd        bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	cfg := &Config{
		AppPort:       getEnv("APP_PORT", "8080"),           // Application port
		DBUser:        os.Getenv("DB_USER"),                 // Database user
		DBPassword:    os.Getenv("DB_PASSWORD"),             // Database password
		DBHost:        getEnv("DB_HOST", "127.0.0.1"),       // Database host
		DBPort:        getEnv("DB_PORT", "3306"),            // Database port
		DBName:        os.Getenv("DB_NAME"),                 // Database name
		JWTSecret:     getEnv("JWT_SECRET", DefaultJWTSecret), // JWT signing key
		JWTExpiresIn:  time.Hour,                            // Default token lifetime
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),    // Directory for uploaded images
		UploadBaseURL: getEnv("UPLOAD_BASE_URL", "/uploads"), // Public URL prefix for uploaded images
		IsProd:        os.Getenv("IS_PROD") == "true",       // Is production environment
	}
	// Token lifetime is a Go duration string, e.g. "1h" or "30m"
	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.JWTExpiresIn = d // Override default lifetime
		} else {
			logrus.Warnf("invalid JWT_EXPIRES_IN %q, using default %s", v, cfg.JWTExpiresIn)
		}
	}
	// Flag the insecure fallback secret loudly
	if cfg.JWTSecret == DefaultJWTSecret {
		logrus.Warn("JWT_SECRET not set; using the insecure built-in default")
	}
	return cfg
}

// DSN builds the MySQL Data Source Name from the configured DB fields
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// getEnv returns the environment variable value or a fallback if unset
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

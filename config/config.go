package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port    string
	GinMode string

	SiteKey      string
	ProviderMode string

	DBURL    string
	RedisURL string

	JWTSecret      string
	JWTExpiryHours int
	AdminEmail     string
	AdminPassword  string

	CORSOrigins []string

	MessagingEndpoint     string
	EnforceChildCutToggle bool
	BookingSessionTTL     time.Duration

	CloudinaryURL string

	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioWhatsAppNumber string
}

// Load reads the configuration. Call godotenv.Load before it to pick up a
// local .env file.
func Load() (*Config, error) {
	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),

		SiteKey:      getEnv("SITE_KEY", "default"),
		ProviderMode: strings.ToLower(getEnv("PROVIDER_MODE", "remote")),

		DBURL:    os.Getenv("DB_URL"),
		RedisURL: os.Getenv("REDIS_URL"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpiryHours: getEnvAsInt("JWT_EXPIRY_HOURS", 24),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),

		CORSOrigins: getEnvAsList("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),

		MessagingEndpoint:     getEnv("MESSAGING_ENDPOINT", "https://wa.me"),
		EnforceChildCutToggle: getEnvAsBool("ENFORCE_CHILD_CUT_TOGGLE", false),
		BookingSessionTTL:     getEnvAsDuration("BOOKING_SESSION_TTL", 30*time.Minute),

		CloudinaryURL: cloudinaryURL(),

		TwilioAccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
	}

	switch cfg.ProviderMode {
	case "remote", "local":
	default:
		return nil, fmt.Errorf("PROVIDER_MODE must be remote or local, got %q", cfg.ProviderMode)
	}
	if cfg.JWTExpiryHours <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRY_HOURS must be positive")
	}
	return cfg, nil
}

func (c *Config) TwilioEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioWhatsAppNumber != ""
}

func (c *Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWTExpiryHours) * time.Hour
}

func cloudinaryURL() string {
	if url := os.Getenv("CLOUDINARY_URL"); url != "" {
		return url
	}
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return ""
	}
	return fmt.Sprintf("cloudinary://%s:%s@%s", apiKey, apiSecret, cloudName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

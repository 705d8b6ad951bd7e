package config

import (
	"os"
	"strconv"
	"time"
)

// App menampung seluruh konfigurasi runtime dari environment variables.
type App struct {
	Env       string
	Port      string
	DSN       string
	JWTSecret string
	RedisAddr string

	// Identitas perusahaan (single tenant, nilainya fixed)
	CompanyID string

	// Kantor default (dipakai seeder kalau tabel kantor masih kosong)
	OfficeName    string
	OfficeLat     float64
	OfficeLng     float64
	OfficeRadiusM float64

	// Reverse geocoder (Nominatim-compatible). Kosongkan untuk menonaktifkan.
	GeocoderBaseURL string
	GeocoderTimeout time.Duration

	// Cooldown debounce setelah submit absen selesai
	SubmitCooldown time.Duration

	// SMTP untuk alert mock location (opsional, skip kalau host kosong)
	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	AlertEmail string
}

// Load membaca konfigurasi dengan default yang masuk akal untuk development.
func Load() App {
	return App{
		Env:       GetEnv("APP_ENV", "dev"),
		Port:      GetEnv("PORT", "3000"),
		DSN:       GetEnv("DATABASE_DSN", "root:@tcp(127.0.0.1:3306)/absensi_lokasi?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret: GetEnv("JWT_SECRET", "rahasia_negara"),
		RedisAddr: GetEnv("REDIS_ADDR", "localhost:6379"),

		CompanyID: GetEnv("COMPANY_ID", "cmpA"),

		// Default: Kampus ITB Nobel Indonesia, Makassar
		OfficeName:    GetEnv("OFFICE_NAME", "ITB Nobel Indonesia"),
		OfficeLat:     GetEnvAsFloat("OFFICE_LAT", -5.1787531),
		OfficeLng:     GetEnvAsFloat("OFFICE_LNG", 119.4390442),
		OfficeRadiusM: GetEnvAsFloat("OFFICE_RADIUS_M", 100.0),

		GeocoderBaseURL: GetEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocoderTimeout: GetEnvAsDuration("GEOCODER_TIMEOUT", 3*time.Second),

		SubmitCooldown: GetEnvAsDuration("SUBMIT_COOLDOWN", 900*time.Millisecond),

		SMTPHost:   GetEnv("SMTP_HOST", ""),
		SMTPPort:   GetEnvAsInt("SMTP_PORT", 587),
		SMTPUser:   GetEnv("SMTP_USER", ""),
		SMTPPass:   GetEnv("SMTP_PASS", ""),
		AlertEmail: GetEnv("ALERT_EMAIL", ""),
	}
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get environment variable as float with fallback
func GetEnvAsFloat(key string, fallback float64) float64 {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

// Helper function to get environment variable as duration with fallback
func GetEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return fallback
}

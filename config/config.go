package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port     string
	LogLevel string
	GinMode  string
	// Browser origins allowed by CORS; empty allows same-origin only
	CORSAllowedOrigins []string
	// MongoDB
	MongoURL      string
	MongoDatabase string
	// Access tokens
	AccessTokenExpireMinutes int
	JWTSecret                string
	JWTAlgorithm             string
	BcryptCost               int
	// Report export
	ReportDir        string
	ReportS3Bucket   string
	ReportS3Region   string
	ReportS3Endpoint string // S3-compatible endpoint override (MinIO, Wasabi)
	S3AccessKeyID    string
	S3SecretKey      string
}

var supportedAlgorithms = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

// LoadConfig reads .env (when present) and the process environment.
// Store URL, token TTL, signing secret and algorithm have no defaults and are
// checked by Validate.
func LoadConfig() (*Config, error) {
	// .env is optional; production injects variables directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:                     getEnv("PORT", "8080"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		GinMode:                  getEnv("GIN_MODE", ""),
		CORSAllowedOrigins:       getEnvList("CORS_ALLOWED_ORIGINS"),
		MongoURL:                 getEnv("MONGODB_URL", ""),
		MongoDatabase:            getEnv("MONGODB_DATABASE", "elevatus"),
		AccessTokenExpireMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE", 0),
		JWTSecret:                getEnv("JWT_SECRET", ""),
		JWTAlgorithm:             strings.ToUpper(getEnv("JWT_ALGORITHM", "")),
		BcryptCost:               getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		ReportDir:                getEnv("REPORT_DIR", "."),
		ReportS3Bucket:           getEnv("REPORT_S3_BUCKET", ""),
		ReportS3Region:           getEnv("REPORT_S3_REGION", "us-east-1"),
		ReportS3Endpoint:         strings.TrimRight(getEnv("REPORT_S3_ENDPOINT", ""), "/"),
		S3AccessKeyID:            getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey:              getEnv("S3_SECRET_ACCESS_KEY", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.ReportS3Bucket == "" {
		log.Println("WARNING: REPORT_S3_BUCKET not configured. Reports are written to REPORT_DIR only.")
	}

	return cfg, nil
}

// Validate reports every missing or invalid core setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.MongoURL == "" {
		errs = append(errs, errors.New("MONGODB_URL is required"))
	}
	if c.AccessTokenExpireMinutes <= 0 {
		errs = append(errs, errors.New("ACCESS_TOKEN_EXPIRE must be a positive number of minutes"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if !supportedAlgorithms[c.JWTAlgorithm] {
		errs = append(errs, fmt.Errorf("JWT_ALGORITHM %q is not supported (HS256, HS384, HS512)", c.JWTAlgorithm))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blank entries.
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

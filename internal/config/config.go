package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config carries every environment-driven setting, resolved once at
// startup and passed into the services that need it. The admin password
// hash is computed here exactly once so request handling never touches
// the plaintext credential or module-level state.

type Config struct {
	HTTPAddr string

	MySQLDSN string

	RedisAddr string

	AdminUsername     string
	AdminPasswordHash []byte
	JWTSecret         []byte
	JWTExpiry         time.Duration

	SlicerImage   string
	SlicerWorkDir string

	StorageBackend  string // "local" or "s3"
	LocalStorageDir string
	S3Bucket        string
	AWSRegion       string

	EmailChannel string // "mock" or "resend"
	ResendAPIKey string
	EmailFrom    string
}

func Load() (Config, error) {
	hash, err := bcrypt.GenerateFromPassword(
		[]byte(getenvDefault("ADMIN_PASSWORD", "admin")),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPAddr: getenvDefault("HTTP_ADDR", ":8080"),

		MySQLDSN: getenvDefault("MYSQL_DSN",
			"swiftprints:swiftprints@tcp(localhost:3306)/swiftprints?charset=utf8mb4&parseTime=True&loc=Local"),

		RedisAddr: getenvDefault("REDIS_ADDR", "localhost:6379"),

		AdminUsername:     getenvDefault("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: hash,
		JWTSecret:         []byte(getenvDefault("JWT_SECRET", "dev-secret-change-me")),
		JWTExpiry:         time.Duration(getenvInt("JWT_EXPIRY_MINUTES", 60)) * time.Minute,

		SlicerImage:   getenvDefault("SLICER_IMAGE", "prusaslicer/prusaslicer:latest"),
		SlicerWorkDir: getenvDefault("SLICER_WORK_DIR", os.TempDir()),

		StorageBackend:  getenvDefault("STORAGE_BACKEND", "local"),
		LocalStorageDir: getenvDefault("LOCAL_STORAGE_DIR", "./uploads"),
		S3Bucket:        os.Getenv("S3_BUCKET"),
		AWSRegion:       getenvDefault("AWS_REGION", "us-east-1"),

		EmailChannel: getenvDefault("EMAIL_CHANNEL", "mock"),
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		EmailFrom:    getenvDefault("EMAIL_FROM", "orders@swiftprints.local"),
	}, nil
}

// CheckAdminCredentials compares a login attempt against the configured
// admin account.
func (c Config) CheckAdminCredentials(username, password string) bool {
	if username != c.AdminUsername {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.AdminPasswordHash, []byte(password)) == nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

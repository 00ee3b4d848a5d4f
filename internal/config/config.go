package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Company is the letterhead printed on every challan PDF.
type Company struct {
	Name    string
	Address string
	Phone   string
}

type Config struct {
	ListenAddr string
	JWTSecret  string
	TokenTTL   time.Duration
	Company    Company
}

func Load() Config {
	return Config{
		ListenAddr: getenv("LISTEN_ADDR", ":8080"),
		JWTSecret:  getenv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:   time.Duration(getenvInt("TOKEN_TTL_HOURS", 12)) * time.Hour,
		Company: Company{
			Name:    getenv("COMPANY_NAME", "Orchid Computing India"),
			Address: getenv("COMPANY_ADDRESS", "151, Bannu Enclave, Road No. 42, Pitampura, Delhi-34"),
			Phone:   getenv("COMPANY_PHONE", "Phone: 27020450, 9311135345"),
		},
	}
}

func InitDB() *gorm.DB {
	dsn := getenv("DATABASE_URL",
		"host=localhost user=postgres password=postgres dbname=challans port=5432 sslmode=disable")

	// TranslateError maps unique violations to gorm.ErrDuplicatedKey
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	return db
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

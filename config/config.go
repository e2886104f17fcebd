package config

import (
	"log"
	"os"

	"shop-service/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret verifies tokens minted by the auth service — both services must
// share the same value.
var JWTSecret = []byte(GetEnv("JWT_SECRET", "shop_service_shared_secret"))

// LoadEnv reads .env if one exists. Missing .env is fine; deployments set
// the environment directly.
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		log.Println("✅ Loaded environment from .env")
	}
	JWTSecret = []byte(GetEnv("JWT_SECRET", "shop_service_shared_secret"))
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the database at DB_PATH and migrates the schema.
func InitDB() {
	OpenDB(GetEnv("DB_PATH", "shop_service.db"))
}

// OpenDB opens an arbitrary DSN — tests pass in-memory DSNs here.
func OpenDB(dsn string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.Shop{},
		&models.Item{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}

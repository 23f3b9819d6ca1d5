package config

import (
	"log"
	"os"

	"restaurant-menu-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_menu_super_secret_2024"))

// dbPath is remembered so the admin "current database" check can report
// which file the service is actually running against.
var dbPath string

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ERPBaseURL is the external system of record the sync operation pulls from.
func ERPBaseURL() string {
	return getEnv("ERP_BASE_URL", "http://localhost:9090")
}

// DatabaseName reports the identity of the connected database.
func DatabaseName() string {
	return dbPath
}

func InitDB() {
	// .env is optional; deployments set real environment variables
	_ = godotenv.Load()

	dbPath = getEnv("DB_PATH", "restaurant_menu.db")
	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}

// Migrate runs auto-migration for all models. Exposed so tests can bring up
// an in-memory database with the same schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Branch{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.SocialLink{},
		&models.RestaurantInfo{},
		&models.TagIcon{},
		&models.SurveyQuestion{},
		&models.SurveyResponse{},
		&models.SurveyAnswer{},
	)
}

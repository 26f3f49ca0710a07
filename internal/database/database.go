package database

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/oliverjumpertz/link-shortener/internal/config"
	"github.com/oliverjumpertz/link-shortener/internal/models"
	"github.com/oliverjumpertz/link-shortener/pkg/logger"
)

var DB *gorm.DB

func Connect() {
	dsn := config.AppConfig.DatabaseURL
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		// Unique violations must surface as gorm.ErrDuplicatedKey so the
		// store layer can tell a collision from any other failure.
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to get underlying sql.DB")
	}

	// Pool sized independently of request concurrency. A timed-out query
	// releases its connection back here; it is never held past the deadline.
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	DB = db
	logger.Info().Msg("Connected to PostgreSQL with connection pooling (max: 20, idle: 10)")
}

// Migrate creates or updates the tables the service owns.
func Migrate() {
	if err := DB.AutoMigrate(&models.Link{}, &models.LinkClickEvent{}, &models.Setting{}); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run database migrations")
	}
	logger.Info().Msg("Database migrations complete")
}

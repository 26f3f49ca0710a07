// setkey provisions the global API key: it hashes the given secret with
// SHA3-256 and upserts the DEFAULT_SETTINGS row. The raw secret is never
// stored.
//
// Usage: DATABASE_URL=... setkey <api-key>
package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/sha3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oliverjumpertz/link-shortener/internal/models"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: setkey <api-key>")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is a required environment variable")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		log.Fatalf("Failed to migrate settings table: %v", err)
	}

	digest := sha3.Sum256([]byte(os.Args[1]))
	setting := models.Setting{
		ID:                    "DEFAULT_SETTINGS",
		EncryptedGlobalAPIKey: hex.EncodeToString(digest[:]),
	}

	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"encrypted_global_api_key"}),
	}).Create(&setting).Error
	if err != nil {
		log.Fatalf("Failed to store API key setting: %v", err)
	}

	fmt.Println("Stored hashed API key under DEFAULT_SETTINGS.")
}

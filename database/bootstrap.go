package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"tripmind/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		log.Fatalf("automigrate: %v", err)
	}
	return db
}

// Migrate creates the schema. Split out of OpenSQLite so tests can run it
// against an in-memory database.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`PRAGMA foreign_keys = ON`).Error; err != nil {
		return err
	}
	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Trip{},
		&entities.PlanVersion{},
		&entities.AccessGrant{},
		&entities.Message{},
		&entities.GuideDocument{},
		&entities.GuideChunk{},
	); err != nil {
		return err
	}
	// Lookup paths that AutoMigrate's PK indexes don't cover.
	for _, stmt := range []string{
		`CREATE INDEX IF NOT EXISTS idx_plan_versions_trip ON plan_versions(trip_id)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_trip ON messages(trip_id)`,
		`CREATE INDEX IF NOT EXISTS idx_grants_grantee ON access_grants(grantee_user_id)`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

package database

import (
	"fmt"
	"time"

	"orgsite-backend/config"
	"orgsite-backend/internal/domain/content"
	"orgsite-backend/internal/domain/member"
	"orgsite-backend/internal/domain/people"
	"orgsite-backend/internal/domain/publication"
	"orgsite-backend/internal/domain/resource"
	"orgsite-backend/internal/domain/showcase"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the Postgres connection described by cfg and configures
// the connection pool. The caller owns the returned handle.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get generic database object: %w", err)
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate runs GORM AutoMigrate for every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&resource.Resource{},
		&resource.ResourceFile{},
		&publication.Publication{},
		&content.HistoryEntry{},
		&content.WorkProgram{},
		&people.Founder{},
		&people.BoardMember{},
		&people.BoardTerm{},
		&showcase.Achievement{},
		&showcase.Merchandise{},
		&member.Stats{},
	)
}

// HealthCheck pings the database.
func HealthCheck(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

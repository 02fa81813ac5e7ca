package db

import (
	"fmt"
	"log"
	"realty-server/entities"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSQLitePath = "realty.db"

// Connect opens the database named by databaseURL and migrates the schema.
// An empty URL falls back to a local SQLite file; postgres:// URLs and
// key=value DSNs go to PostgreSQL. The table contract is identical either way.
func Connect(databaseURL string) (Database, error) {
	var (
		db  *gorm.DB
		err error
	)

	gormCfg := &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Warn),
		PrepareStmt: true,
	}

	if isPostgresURL(databaseURL) {
		dsn := databaseURL

		// Hosted databases usually require SSL; add it when the URL omits it
		if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
			if !strings.Contains(dsn, "sslmode=") {
				if strings.Contains(dsn, "?") {
					dsn += "&sslmode=require"
				} else {
					dsn += "?sslmode=require"
				}
			}
		}

		log.Println("Connecting to PostgreSQL database...")
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database instance: %w", err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		path := strings.TrimPrefix(databaseURL, "sqlite://")
		if path == "" {
			path = defaultSQLitePath
		}

		log.Printf("Connecting to SQLite database at %s...", path)
		db, err = gorm.Open(sqlite.Open(path), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
	}

	log.Println("Running database migrations...")
	if err := db.AutoMigrate(&entities.Property{}, &entities.ServiceBooking{}, &entities.User{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("Database migrations completed successfully!")

	return &GormDatabase{DB: db}, nil
}

func isPostgresURL(url string) bool {
	return strings.HasPrefix(url, "postgres://") ||
		strings.HasPrefix(url, "postgresql://") ||
		strings.Contains(url, "host=")
}

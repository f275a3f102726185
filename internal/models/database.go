package models

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

// Connect opens the database and migrates the schema.
//
// If DB_HOST is set, a postgresql database is used. Otherwise, the
// sqlite database at dsn is opened, creating the file if needed.
func Connect(dsn string) error {
	var db *gorm.DB
	var err error

	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
		// Map dialect specific errors like unique constraint violations
		// to the gorm error values
		TranslateError: true,
	}

	_, usePostgres := os.LookupEnv("DB_HOST")
	if usePostgres {
		log.Debug().Msg("DB_HOST is set, using postgresql")
		pgDSN := fmt.Sprintf("host=%s user=%s password=%s dbname=%s", os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
		db, err = gorm.Open(postgres.Open(pgDSN), config)
	} else {
		log.Debug().Msg("DB_HOST is not set, using sqlite database")
		db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), config)
	}

	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors. Postgres handles
	// concurrent connections fine and keeps the default pool.
	if !usePostgres {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	err = db.AutoMigrate(User{}, Expense{}, Income{}, Budget{})
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("finsmart:after_query", queryCallback)
	if err != nil {
		return err
	}

	DB = db
	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one.
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y", then remove a plural "s"
		name = regexp.MustCompile("ies$").ReplaceAllString(name, "y")
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"shop-api/models"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the store handle shared by all repositories
type DB struct {
	*gorm.DB
}

// Options tunes how the store is opened
type Options struct {
	// LogQueries enables GORM's SQL logging at warn level
	LogQueries bool
}

// Open connects to the database named by url. postgres:// and postgresql://
// URLs use the postgres driver; anything else is a sqlite file path.
func Open(url string, opts Options) (*DB, error) {
	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}
	if opts.LogQueries {
		cfg.Logger = logger.Default.LogMode(logger.Warn)
	}

	if isPostgres(url) {
		db, err := gorm.Open(postgres.Open(url), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		return &DB{db}, nil
	}

	conn, err := openSQLite(url)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.New(sqlite.Config{Conn: conn}), cfg)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &DB{db}, nil
}

func isPostgres(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

func openSQLite(dbPath string) (*sql.DB, error) {
	dbPath = strings.TrimPrefix(dbPath, "file:")

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them
	dsn := dbPath + "?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema
func (db *DB) Migrate() error {
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Unit{},
		&models.Product{},
		&models.User{},
	); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

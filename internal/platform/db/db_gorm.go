package db

import (
	"fmt"
	"log"
	"os"
	"time"

	watchlistadapters "watchlist_backend/internal/feature/watchlist/adapters"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds database connection settings.
type Config struct {
	User       string
	Password   string
	Name       string
	Host       string
	Port       string
	SQLitePath string
}

// LoadConfigFromEnv loads database configuration from environment variables.
func LoadConfigFromEnv() Config {
	cfg := Config{
		User:       os.Getenv("DB_USER"),
		Password:   os.Getenv("DB_PASSWORD"),
		Name:       os.Getenv("DB_NAME"),
		Host:       os.Getenv("DB_HOST"),
		Port:       os.Getenv("DB_PORT"),
		SQLitePath: os.Getenv("SQLITE_PATH"),
	}
	if cfg.Port == "" {
		cfg.Port = "5432"
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "watchlist.db"
	}
	return cfg
}

// BuildDSN builds a Postgres DSN from the configuration.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
}

// Opener opens a gorm connection for the given DSN.
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry keeps retrying the opener until it succeeds or the
// timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %v: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB opens the watch-list database. When DB_HOST is set it connects to
// Postgres with a retry loop, otherwise it falls back to a local SQLite file
// so the server can run without external services.
func OpenDB() *gorm.DB {
	cfg := LoadConfigFromEnv()

	if cfg.Host == "" {
		db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
		if err != nil {
			log.Fatalf("sqlite open failed: %v", err)
		}
		migrate(db)
		return db
	}

	db, err := ConnectWithRetry(BuildDSN(cfg), 60*time.Second, func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	migrate(db)
	return db
}

func migrate(db *gorm.DB) {
	if err := db.AutoMigrate(&watchlistadapters.ItemModel{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
}

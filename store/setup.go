package store

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hearthware/wellness-core/logger"
)

// Store reads domain records for the embedding pipeline. It is strictly
// read-only: the pipeline never mutates the relational source of truth.
type Store struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewStore establishes the database connection and configures the pool.
func NewStore(cfg Config, log *logger.Logger) (*Store, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DbName, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("store: failed to connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("store: failed to get database instance: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = 50
	}
	maxIdle := cfg.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = 25
	}
	maxLifetime := cfg.ConnMaxLifetime
	if maxLifetime == 0 {
		maxLifetime = 1 * time.Minute
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	log.Info("Connected to postgres", nil, map[string]interface{}{
		"host": cfg.Host,
		"db":   cfg.DbName,
	})

	return &Store{db: db, log: log}, nil
}

// DB exposes the underlying gorm handle for advanced queries.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

package store

import (
	"errors"
	"time"

	"github.com/campusdesk/registry-api/internal/config"
	"github.com/campusdesk/registry-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Store struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewGormStore(cfg *config.Config) (*Store, error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// Pooling sensible defaults for small VPS (tune later)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return &Store{DB: db, Cfg: cfg}, nil
}

// NewWithDB wraps an already-open GORM connection and runs migration.
// Tests use this with a sqlite backend.
func NewWithDB(db *gorm.DB, cfg *config.Config) (*Store, error) {
	if err := migrate(db); err != nil {
		return nil, err
	}
	return &Store{DB: db, Cfg: cfg}, nil
}

// NewDetached returns a store with no database behind it. Every operation
// fails with ErrUnavailable while the HTTP surface stays up.
func NewDetached(cfg *config.Config) *Store {
	return &Store{Cfg: cfg}
}

func migrate(db *gorm.DB) error {
	// AutoMigrate (non-destructive: creates tables/columns/indexes)
	return db.AutoMigrate(&models.Student{}, &models.Course{})
}

func (s *Store) ready() error {
	if s.DB == nil {
		return ErrUnavailable
	}
	return nil
}

func (s *Store) Close() error {
	if s.DB == nil {
		return nil
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

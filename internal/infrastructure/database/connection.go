package database

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"libris/internal/domain/author"
	"libris/internal/domain/book"
	"libris/internal/domain/loan"
	"libris/internal/domain/user"
	"libris/internal/shared/config"
	appLogger "libris/internal/shared/logger"
)

var (
	db   *gorm.DB
	dbMu sync.RWMutex
)

// Init opens the MySQL connection and configures the pool.
func Init(cfg *config.DatabaseConfig) error {
	database, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
		PrepareStmt: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	dbMu.Lock()
	db = database
	dbMu.Unlock()

	appLogger.Info("database connection established", "database", cfg.Database)

	return nil
}

// Migrate creates or updates the schema for every persisted entity.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&user.User{},
		&author.Author{},
		&book.Book{},
		&loan.BookLoan{},
	)
}

// Get returns the database connection.
func Get() *gorm.DB {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return db
}

// Close closes the database connection.
func Close() error {
	dbMu.RLock()
	currentDB := db
	dbMu.RUnlock()

	if currentDB == nil {
		return nil
	}

	sqlDB, err := currentDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	appLogger.Info("database connection closed")
	return nil
}

// Ping reports connection health for the health endpoint.
func Ping() error {
	current := Get()
	if current == nil {
		return fmt.Errorf("database not initialized")
	}
	sqlDB, err := current.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

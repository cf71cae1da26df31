package database

import (
	"fmt"
	"time"

	"github.com/prepmimo/backend/internal/config"
	"github.com/prepmimo/backend/internal/logger"
	"github.com/prepmimo/backend/internal/model"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Connect opens the configured database. Errors are translated so that
// constraint violations surface as gorm.ErrForeignKeyViolated.
func Connect(dbConfig *config.DBConfig, production bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch dbConfig.Driver {
	case DriverPostgres, "":
		dialector = postgres.Open(dbConfig.ConnectionString())
	case DriverSQLite:
		if dbConfig.DSN == "" {
			return nil, fmt.Errorf("DB_DSN is required for the sqlite driver")
		}
		dialector = sqlite.Open(dbConfig.DSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", dbConfig.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("could not get database instance: %w", err)
	}

	switch {
	case dbConfig.Driver == DriverSQLite:
		// single connection: sqlite allows one writer
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	case production:
		sqlDB.SetMaxIdleConns(20)
		sqlDB.SetMaxOpenConns(200)
		sqlDB.SetConnMaxLifetime(time.Hour)
	default:
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	logger.Info("Database connected", zap.String("driver", dbConfig.Driver))
	return db, nil
}

// Migrate creates or updates the users, interview and feedback tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Interview{}, &model.Feedback{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/mazebank/transaction-service/internal/domain/port/core"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connection holds the relational engine handle and its configuration.
// There is one per process; every repository shares it.
type Connection struct {
	DB     *gorm.DB
	Config *Config
}

// Connect establishes the database connection, retrying per the configured
// attempt count before giving up.
func Connect(config *Config, log coreport.Logger) (*Connection, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	var conn *Connection
	var err error

	attempts := config.RetryAttempts + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		conn, err = open(config)
		if err == nil {
			log.Info("Connected to database", map[string]any{
				"host":     config.Host,
				"database": config.Database,
				"attempt":  attempt,
			})
			return conn, nil
		}

		log.Warn("Database connection attempt failed", map[string]any{
			"attempt": attempt,
			"error":   err.Error(),
		})
		if attempt < attempts {
			time.Sleep(config.RetryDelay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
}

func open(config *Config) (*Connection, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(config.LogLevel)),
	}

	db, err := gorm.Open(postgres.Open(config.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Connection{DB: db, Config: config}, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Info
	}
}

// Close closes the database connection
func (c *Connection) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

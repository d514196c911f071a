package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotFound is returned by store lookups when no row matches.
var ErrNotFound = errors.New("record not found")

// Connect opens the canonical store.
// The mysql driver is used in production; sqlite backs local runs and tests
// (Name ":memory:" gives a private in-memory database).
func Connect(cfg Config) (*gorm.DB, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	// Suppress GORM logging; callers log through zap
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.Name)
	case "mysql", "":
		// Special characters in the password must be URL encoded for the DSN
		userInfo := url.UserPassword(cfg.User, cfg.Password).String()
		dsn := fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
			userInfo, cfg.Host, cfg.Port, cfg.Name, timeout, timeout, timeout)
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Driver == "sqlite" {
		// Every sqlite connection to ":memory:" is a separate database
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// GetOrCreate loads the row with the given primary key into entity, or inserts
// entity when no such row exists. The returned flag reports whether a row was created.
func GetOrCreate[T any](ctx context.Context, db *gorm.DB, id any, entity *T) (bool, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(entity)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return false, nil
	}
	if err := db.WithContext(ctx).Create(entity).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Get loads the row with the given primary key, mapping a miss to ErrNotFound.
func Get[T any](ctx context.Context, db *gorm.DB, id any) (*T, error) {
	var entity T
	err := db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound(entity, id)
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// NotFound wraps ErrNotFound with the entity type and key.
func NotFound(entity any, id any) error {
	return fmt.Errorf("%T %v: %w", entity, id, ErrNotFound)
}

// IDs returns every primary key of the table behind model.
func IDs(ctx context.Context, db *gorm.DB, model any) ([]int64, error) {
	var ids []int64
	if err := db.WithContext(ctx).Model(model).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Create inserts the record and fills its generated primary key.
func (f *PostgresDB) Create(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, conds map[string]any, entity any) error {
	err := f.DB.WithContext(ctx).Where(conds).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record: %w", err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, conds map[string]any, orderBy string, entity any) error {
	tx := f.DB.WithContext(ctx).Where(conds)
	if orderBy != "" {
		tx = tx.Order(orderBy)
	}
	if err := tx.Find(entity).Error; err != nil {
		return fmt.Errorf("getting records: %w", err)
	}
	return nil
}

// Updates applies only the given fields to the record identified by the
// model's primary key.
func (f *PostgresDB) Updates(ctx context.Context, model any, fields map[string]any) error {
	err := f.DB.WithContext(ctx).Model(model).Updates(fields).Error
	if err != nil {
		return fmt.Errorf("updating record: %w", err)
	}
	return nil
}

// DeleteWhere removes the matching rows and reports how many were affected.
func (f *PostgresDB) DeleteWhere(ctx context.Context, model any, conds map[string]any) (int64, error) {
	tx := f.DB.WithContext(ctx).Where(conds).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting record: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

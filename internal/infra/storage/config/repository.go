package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarberShop/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberShop/pkg/psqlbuilder"
)

const tableConfig = "config"

// Repository хранилище пар ключ-значение (PIN барбера и т.п.)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает значение по ключу
// Если ключ отсутствует, возвращает ErrConfigNotFound
func (r *Repository) Get(ctx context.Context, key string) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("value").
		From(tableConfig).
		Where(squirrel.Eq{"key": key}).
		ToSql()

	if err != nil {
		return "", fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrConfigNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: Get - scan value: %v", ErrScanRow, err)
	}

	return value, nil
}

// Set записывает значение, перезаписывая существующее
func (r *Repository) Set(ctx context.Context, key, value string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableConfig).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// SetIfAbsent записывает значение, только если ключа ещё нет
// Возвращает true, если запись была создана
func (r *Repository) SetIfAbsent(ctx context.Context, key, value string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableConfig).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO NOTHING").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: SetIfAbsent - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: SetIfAbsent - execute insert: %v", ErrExecQuery, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: SetIfAbsent - rows affected: %v", ErrExecQuery, err)
	}

	return rows > 0, nil
}

// CompareAndSet заменяет значение, только если текущее равно expected
// Возвращает false, если ключа нет или значение уже изменилось
func (r *Repository) CompareAndSet(ctx context.Context, key, expected, value string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableConfig).
		Set("value", value).
		Where(squirrel.Eq{"key": key, "value": expected}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: CompareAndSet - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: CompareAndSet - execute update: %v", ErrExecQuery, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: CompareAndSet - rows affected: %v", ErrExecQuery, err)
	}

	return rows == 1, nil
}

package migrator

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrator применяет SQL-миграции из fs.FS к PostgreSQL
type Migrator struct {
	m *migrate.Migrate
}

// New создает мигратор поверх открытого соединения
// Мигратор забирает db во владение: Close закроет и соединение
func New(db *sql.DB, source fs.FS) (*Migrator, error) {
	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("migrator: db driver: %w", err)
	}

	srcDriver, err := iofs.New(source, ".")
	if err != nil {
		return nil, fmt.Errorf("migrator: source driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		return nil, fmt.Errorf("migrator: create: %w", err)
	}

	return &Migrator{m: m}, nil
}

// Up применяет все новые миграции; отсутствие изменений не считается ошибкой
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrator: up: %w", err)
	}
	return nil
}

// Down откатывает одну последнюю миграцию
func (mg *Migrator) Down() error {
	if err := mg.m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrator: down: %w", err)
	}
	return nil
}

// Version текущая версия схемы
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// Close закрывает источник миграций и соединение с БД
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	"github.com/m04kA/SMC-BarberShop/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberShop/pkg/psqlbuilder"
)

const (
	tableAppointments = "appointments"

	// pqUniqueViolation SQLSTATE 23505
	pqUniqueViolation = "23505"

	// dateLockNamespace старшие 32 бита ключа advisory lock, чтобы не пересекаться с другими блокировками
	dateLockNamespace int64 = 0x42415242 << 32
)

var appointmentColumns = []string{
	"id",
	"reference",
	"client_name",
	"phone",
	"service",
	"date",
	"start_time",
	"created_at",
}

// Repository репозиторий записей клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись и заполняет ID и CreatedAt
// Если код бронирования уже существует, возвращает ErrDuplicateReference
// Если в контексте есть активная транзакция, запрос выполняется в ней
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableAppointments).
		Columns(
			"reference",
			"client_name",
			"phone",
			"service",
			"date",
			"start_time",
		).
		Values(
			appt.Reference,
			appt.ClientName,
			appt.Phone,
			appt.Service,
			appt.Date.Format(domain.DateFormat),
			appt.StartTime,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&appt.ID, &createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateReference
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time

	return appt, nil
}

// DeleteByReference удаляет запись по коду и возвращает удалённые данные
// Удаление и чтение выполняются одним запросом (DELETE ... RETURNING)
func (r *Repository) DeleteByReference(ctx context.Context, reference string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableAppointments).
		Where(squirrel.Eq{"reference": reference}).
		Suffix("RETURNING " + strings.Join(appointmentColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: DeleteByReference - build delete query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: DeleteByReference - scan appointment: %w", ErrScanRow, err)
	}

	return appt, nil
}

// GetByDate получает записи на дату, отсортированные по времени начала
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From(tableAppointments).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		OrderBy("start_time ASC")

	return r.query(ctx, "GetByDate", selectBuilder)
}

// GetByDateRange получает записи за период [from, to] включительно
// Сортировка по дате и времени начала
func (r *Repository) GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From(tableAppointments).
		Where(squirrel.GtOrEq{"date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"date": to.Format(domain.DateFormat)}).
		OrderBy("date ASC", "start_time ASC")

	return r.query(ctx, "GetByDateRange", selectBuilder)
}

// GetFutureByPhone получает записи клиента начиная с fromDate
// Телефон сравнивается как есть, без нормализации
func (r *Repository) GetFutureByPhone(ctx context.Context, phone string, fromDate time.Time) ([]*domain.Appointment, error) {
	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From(tableAppointments).
		Where(squirrel.Eq{"phone": phone}).
		Where(squirrel.GtOrEq{"date": fromDate.Format(domain.DateFormat)}).
		OrderBy("date ASC", "start_time ASC")

	return r.query(ctx, "GetFutureByPhone", selectBuilder)
}

// ExistsReference проверяет, занят ли код бронирования
func (r *Repository) ExistsReference(ctx context.Context, reference string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(tableAppointments).
		Where(squirrel.Eq{"reference": reference}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsReference - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsReference - scan: %w", ErrScanRow, err)
	}

	return true, nil
}

// LockDate берёт транзакционную advisory-блокировку на дату
// Все записи на одну дату сериализуются: проверка свободного слота и вставка
// выполняются без гонки. Блокировка снимается при завершении транзакции
func (r *Repository) LockDate(ctx context.Context, date time.Time) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return ErrNotInTransaction
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select().
		Column(squirrel.Expr("pg_advisory_xact_lock(?)", dateLockKey(date))).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: LockDate - build query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: LockDate - execute: %w", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) query(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.Reference,
		&appt.ClientName,
		&appt.Phone,
		&appt.Service,
		&appt.Date,
		&appt.StartTime,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	appt.Date = domain.DateOnly(appt.Date)
	appt.CreatedAt = createdAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %w", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %w", ErrScanRow, err)
	}

	return appointments, nil
}

// dateLockKey ключ блокировки: пространство имён + номер дня от эпохи
func dateLockKey(date time.Time) int64 {
	return dateLockNamespace | domain.DateOnly(date).Unix()/86400
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

package balance

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=balance_repo.go -destination=mock/balance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context) ([]Balance, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Balance, error)
	FindByEmployeeAndYear(ctx context.Context, employeeID string, year int) (*Balance, error)
	FindByEmployeeAndYearForUpdate(ctx context.Context, employeeID string, year int) (*Balance, error)
	Create(ctx context.Context, b *Balance) error
	UpdateCounters(ctx context.Context, id string, annualDays, absenceDays int) error
	Upsert(ctx context.Context, b *Balance) error
}

type repository struct {
	db    *gorm.DB
	sqlDB *sql.DB
	tx    *sql.Tx
}

func NewRepository(db *gorm.DB, sqlDB *sql.DB) Repository {
	return &repository{db: db, sqlDB: sqlDB}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, sqlDB: r.sqlDB, tx: tx}
}

func (r *repository) FindAll(ctx context.Context) ([]Balance, error) {
	var balances []Balance
	err := r.db.WithContext(ctx).
		Order("year DESC, employee_id ASC").
		Find(&balances).Error
	return balances, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Balance, error) {
	var balances []Balance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("year DESC").
		Find(&balances).Error
	return balances, err
}

const selectBalance = `
SELECT id::text, employee_id::text, year, annual_leave_days, absence_leave_days
FROM solde_conges
WHERE employee_id = $1 AND year = $2
`

func (r *repository) FindByEmployeeAndYear(ctx context.Context, employeeID string, year int) (*Balance, error) {
	return r.queryOne(ctx, selectBalance, employeeID, year)
}

// FindByEmployeeAndYearForUpdate takes a row lock for the duration of the
// surrounding transaction so concurrent debits serialize instead of
// losing updates.
func (r *repository) FindByEmployeeAndYearForUpdate(ctx context.Context, employeeID string, year int) (*Balance, error) {
	return r.queryOne(ctx, selectBalance+" FOR UPDATE", employeeID, year)
}

func (r *repository) queryOne(ctx context.Context, query string, employeeID string, year int) (*Balance, error) {
	var (
		b         Balance
		id, empID string
	)
	row := r.querier().QueryRowContext(ctx, query, employeeID, year)
	if err := row.Scan(&id, &empID, &b.Year, &b.AnnualLeaveDays, &b.AbsenceLeaveDays); err != nil {
		return nil, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	parsedEmpID, err := uuid.Parse(empID)
	if err != nil {
		return nil, err
	}
	b.ID = parsedID
	b.EmployeeID = parsedEmpID
	return &b, nil
}

func (r *repository) Create(ctx context.Context, b *Balance) error {
	query := `
INSERT INTO solde_conges (id, employee_id, year, annual_leave_days, absence_leave_days, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
`
	_, err := r.execer().ExecContext(ctx, query,
		b.ID, b.EmployeeID, b.Year, b.AnnualLeaveDays, b.AbsenceLeaveDays,
	)
	return err
}

func (r *repository) UpdateCounters(ctx context.Context, id string, annualDays, absenceDays int) error {
	query := `
UPDATE solde_conges
SET annual_leave_days = $2, absence_leave_days = $3, updated_at = NOW()
WHERE id = $1
`
	res, err := r.execer().ExecContext(ctx, query, id, annualDays, absenceDays)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repository) Upsert(ctx context.Context, b *Balance) error {
	query := `
INSERT INTO solde_conges (id, employee_id, year, annual_leave_days, absence_leave_days, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
ON CONFLICT (employee_id, year) DO UPDATE
SET annual_leave_days = EXCLUDED.annual_leave_days,
    absence_leave_days = EXCLUDED.absence_leave_days,
    updated_at = NOW()
`
	_, err := r.execer().ExecContext(ctx, query,
		b.ID, b.EmployeeID, b.Year, b.AnnualLeaveDays, b.AbsenceLeaveDays,
	)
	return err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}

func (r *repository) querier() interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}

// IsUniqueViolation reports the postgres unique_violation error class,
// used to detect a concurrent creation of the same (employee, year) row.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

package request

import (
	"context"
	"database/sql"

	"github.com/Ezra12363/Conge-sub001/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=request_repo.go -destination=mock/request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, req *Request) error
	FindAll(ctx context.Context) ([]Request, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Request, error)
	FindByID(ctx context.Context, id string) (*Request, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Request, error)
	Update(ctx context.Context, req *Request) error
	SumApprovedDays(ctx context.Context, employeeID string, year int, kind domain.Kind) (int, error)
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

func (r *repository) Create(ctx context.Context, req *Request) error {
	query := `
INSERT INTO demandes (
	id, employee_id, kind, year, entitlement_snapshot, location,
	start_date, end_date, days, status, comment, attachment_ref,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
`
	_, err := r.execer().ExecContext(ctx, query,
		req.ID, req.EmployeeID, string(req.Kind), req.Year,
		req.EntitlementSnapshot, req.Location,
		req.StartDate, req.EndDate, req.Days,
		string(req.Status), req.Comment, req.AttachmentRef,
	)
	return err
}

func (r *repository) FindAll(ctx context.Context) ([]Request, error) {
	var requests []Request
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Request, error) {
	var requests []Request
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	return &req, err
}

const selectRequestForUpdate = `
SELECT
	id::text, employee_id::text, kind, year, entitlement_snapshot,
	COALESCE(location, ''), start_date, end_date, days, status,
	COALESCE(comment, ''), attachment_ref
FROM demandes
WHERE id = $1 AND deleted_at IS NULL
FOR UPDATE
`

// FindByIDForUpdate locks the request row so a decision and an edit on
// the same request cannot interleave.
func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Request, error) {
	var (
		req        Request
		rid, empID string
		kind       string
		status     string
	)
	row := r.querier().QueryRowContext(ctx, selectRequestForUpdate, id)
	err := row.Scan(
		&rid, &empID, &kind, &req.Year, &req.EntitlementSnapshot,
		&req.Location, &req.StartDate, &req.EndDate, &req.Days, &status,
		&req.Comment, &req.AttachmentRef,
	)
	if err != nil {
		return nil, err
	}

	parsedID, err := uuid.Parse(rid)
	if err != nil {
		return nil, err
	}
	parsedEmpID, err := uuid.Parse(empID)
	if err != nil {
		return nil, err
	}
	req.ID = parsedID
	req.EmployeeID = parsedEmpID
	req.Kind = domain.Kind(kind)
	req.Status = domain.Status(status)
	return &req, nil
}

func (r *repository) Update(ctx context.Context, req *Request) error {
	query := `
UPDATE demandes
SET
	kind = $2, year = $3, location = $4,
	start_date = $5, end_date = $6, days = $7,
	status = $8, comment = $9, attachment_ref = $10,
	updated_at = NOW()
WHERE id = $1 AND deleted_at IS NULL
`
	res, err := r.execer().ExecContext(ctx, query,
		req.ID, string(req.Kind), req.Year, req.Location,
		req.StartDate, req.EndDate, req.Days,
		string(req.Status), req.Comment, req.AttachmentRef,
	)
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

func (r *repository) SumApprovedDays(ctx context.Context, employeeID string, year int, kind domain.Kind) (int, error) {
	var total int
	err := r.db.WithContext(ctx).
		Model(&Request{}).
		Select("COALESCE(SUM(days), 0)").
		Where("employee_id = ?", employeeID).
		Where("kind = ?", string(kind)).
		Where("status = ?", string(domain.StatusApproved)).
		Where("EXTRACT(YEAR FROM start_date) = ?", year).
		Scan(&total).Error
	return total, err
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

package validation

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=validation_repo.go -destination=mock/validation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// UpsertForRequest writes the decision record of one request,
	// replacing any earlier record (latest wins).
	UpsertForRequest(ctx context.Context, v *Validation) error
	FindByRequest(ctx context.Context, requestID string) (*Validation, error)
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

func (r *repository) UpsertForRequest(ctx context.Context, v *Validation) error {
	query := `
INSERT INTO validations (id, request_id, responsible_id, decision, comment, decided_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
ON CONFLICT (request_id) DO UPDATE
SET responsible_id = EXCLUDED.responsible_id,
    decision = EXCLUDED.decision,
    comment = EXCLUDED.comment,
    decided_at = EXCLUDED.decided_at,
    updated_at = NOW()
`
	_, err := r.execer().ExecContext(ctx, query,
		v.ID, v.RequestID, v.ResponsibleID, v.Decision, v.Comment, v.DecidedAt,
	)
	return err
}

func (r *repository) FindByRequest(ctx context.Context, requestID string) (*Validation, error) {
	var v Validation
	err := r.db.WithContext(ctx).First(&v, "request_id = ?", requestID).Error
	return &v, err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}

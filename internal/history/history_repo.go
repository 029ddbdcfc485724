package history

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=history_repo.go -destination=mock/history_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, h *History) error
	// ListFor pages through the entries of one request ordered by
	// timestamp ascending; pass the last seen timestamp to resume.
	ListFor(ctx context.Context, requestID string, after *time.Time, limit int) ([]History, error)
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

func (r *repository) Create(ctx context.Context, h *History) error {
	query := `
INSERT INTO historiques (id, request_id, action, actor_id, created_at)
VALUES ($1, $2, $3, $4, NOW())
`
	_, err := r.execer().ExecContext(ctx, query, h.ID, h.RequestID, h.Action, h.ActorID)
	return err
}

func (r *repository) ListFor(ctx context.Context, requestID string, after *time.Time, limit int) ([]History, error) {
	if limit <= 0 {
		limit = 100
	}

	db := r.db.WithContext(ctx).
		Where("request_id = ?", requestID)
	if after != nil {
		db = db.Where("created_at > ?", *after)
	}

	var entries []History
	err := db.Order("created_at ASC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}

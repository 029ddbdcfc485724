package history

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Action labels recorded on status transitions.
const (
	ActionApproved  = "approved"
	ActionRejected  = "rejected"
	ActionCancelled = "cancelled"
	ActionEdited    = "edited"
)

// NewEntry builds an audit entry; writers append it through the repository
// inside their own transaction.
func NewEntry(requestID, actorID uuid.UUID, action string) *History {
	return &History{
		ID:        uuid.New(),
		RequestID: requestID,
		ActorID:   actorID,
		Action:    action,
	}
}

//go:generate mockgen -source=history_service.go -destination=mock/history_service_mock.go -package=mock
type Service interface {
	ListFor(ctx context.Context, requestID string, after *time.Time, limit int) ([]HistoryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("history.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("history.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) ListFor(ctx context.Context, requestID string, after *time.Time, limit int) ([]HistoryResponse, error) {
	entries, err := s.repo.ListFor(ctx, requestID, after, limit)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(entries), nil
}

package validation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Ezra12363/Conge-sub001/internal/balance"
	"github.com/Ezra12363/Conge-sub001/internal/domain"
	"github.com/Ezra12363/Conge-sub001/internal/employee"
	employeeerrors "github.com/Ezra12363/Conge-sub001/internal/employee/errors"
	"github.com/Ezra12363/Conge-sub001/internal/events"
	"github.com/Ezra12363/Conge-sub001/internal/history"
	"github.com/Ezra12363/Conge-sub001/internal/messaging/kafka"
	"github.com/Ezra12363/Conge-sub001/internal/request"
	requesterrors "github.com/Ezra12363/Conge-sub001/internal/request/errors"
	"github.com/Ezra12363/Conge-sub001/internal/shared/contextutil"
	validationerrors "github.com/Ezra12363/Conge-sub001/internal/validation/errors"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=validation_service.go -destination=mock/validation_service_mock.go -package=mock
type Service interface {
	Decide(ctx context.Context, actorID string, req DecideRequestDTO) (DecisionResponse, error)
	GetByRequest(ctx context.Context, requestID string) (ValidationResponse, error)
}

type service struct {
	db          *sql.DB
	requests    request.Repository
	balances    balance.Repository
	validations Repository
	histories   history.Repository
	employees   employee.Repository
	outbox      kafka.OutboxRepository
	rdb         *redis.Client
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	requests request.Repository,
	balances balance.Repository,
	validations Repository,
	histories history.Repository,
	employees employee.Repository,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("validation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("validation.service")
	}
	return &service{
		db:          db,
		requests:    requests,
		balances:    balances,
		validations: validations,
		histories:   histories,
		employees:   employees,
		outbox:      outbox,
		rdb:         rdb,
		logger:      l,
	}
}

func targetStatus(decision string) (domain.Status, error) {
	switch decision {
	case "approved":
		return domain.StatusApproved, nil
	case "rejected":
		return domain.StatusRejected, nil
	default:
		return "", validationerrors.ErrInvalidDecision
	}
}

// Decide applies an approve or reject decision to a pending request.
// Everything happens in one transaction under row locks: the request row
// first, then the balance row on approval, so two decisions for the same
// employee cannot lose an update. An approval debits the kind's counter;
// the counter may go negative and is then flagged, not blocked.
func (s *service) Decide(ctx context.Context, actorID string, req DecideRequestDTO) (DecisionResponse, error) {
	s.logger.Debug("decide requested",
		zap.String("request_id", req.RequestID),
		zap.String("actor_id", actorID),
		zap.String("decision", req.Decision),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return DecisionResponse{}, validationerrors.ErrInvalidResponsibleID
	}
	target, err := targetStatus(req.Decision)
	if err != nil {
		return DecisionResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide begin tx failed", zap.Error(err))
		return DecisionResponse{}, err
	}
	defer tx.Rollback()

	qreq := s.requests.WithTx(tx)
	qbal := s.balances.WithTx(tx)
	qval := s.validations.WithTx(tx)
	qhist := s.histories.WithTx(tx)

	r, err := qreq.FindByIDForUpdate(ctx, req.RequestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DecisionResponse{}, requesterrors.ErrRequestNotFound
		}
		return DecisionResponse{}, err
	}

	if r.EmployeeID == actorUUID {
		return DecisionResponse{}, validationerrors.ErrOwnRequestDecision
	}

	if !domain.AllowedTransition(r.Status, target) {
		s.logger.Warn("decide invalid status",
			zap.String("request_id", req.RequestID),
			zap.String("status", string(r.Status)),
			zap.String("decision", req.Decision),
		)
		return DecisionResponse{}, requesterrors.ErrNotPending(string(r.Status))
	}

	emp, err := s.employees.FindByID(ctx, r.EmployeeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DecisionResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return DecisionResponse{}, err
	}

	bal, err := balance.GetOrCreateForUpdate(ctx, qbal, r.EmployeeID, r.Year, emp.Role, emp.Grade)
	if err != nil {
		s.logger.Error("decide load balance failed", zap.Error(err))
		return DecisionResponse{}, err
	}

	warning := false
	if target == domain.StatusApproved {
		switch r.Kind {
		case domain.KindAbsence:
			bal.AbsenceLeaveDays -= r.Days
			warning = bal.AbsenceLeaveDays < 0
		default:
			bal.AnnualLeaveDays -= r.Days
			warning = bal.AnnualLeaveDays < 0
		}
		if err := qbal.UpdateCounters(ctx, bal.ID.String(), bal.AnnualLeaveDays, bal.AbsenceLeaveDays); err != nil {
			s.logger.Error("decide debit balance failed", zap.Error(err))
			return DecisionResponse{}, err
		}
	}

	r.Status = target
	if err := qreq.Update(ctx, r); err != nil {
		s.logger.Error("decide update request failed", zap.Error(err))
		return DecisionResponse{}, err
	}

	now := time.Now().UTC()
	decision := req.Decision
	v := &Validation{
		ID:            uuid.New(),
		RequestID:     r.ID,
		ResponsibleID: actorUUID,
		Decision:      &decision,
		Comment:       req.Comment,
		DecidedAt:     &now,
	}
	if err := qval.UpsertForRequest(ctx, v); err != nil {
		s.logger.Error("decide persist validation failed", zap.Error(err))
		return DecisionResponse{}, err
	}

	if err := qhist.Create(ctx, history.NewEntry(r.ID, actorUUID, req.Decision)); err != nil {
		s.logger.Error("decide persist history failed", zap.Error(err))
		return DecisionResponse{}, err
	}

	if s.outbox != nil {
		if err := s.enqueueDecidedEvent(ctx, tx, r, actorID, req); err != nil {
			s.logger.Error("decide enqueue event failed", zap.Error(err))
			return DecisionResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide commit failed", zap.Error(err))
		return DecisionResponse{}, err
	}

	balance.InvalidateCache(ctx, s.rdb, r.EmployeeID.String())

	s.logger.Info("decide success",
		zap.String("request_id", req.RequestID),
		zap.String("decision", req.Decision),
		zap.Bool("balance_warning", warning),
	)

	return DecisionResponse{
		Request: request.ToResponse(*r),
		Balance: BalanceSnapshot{
			AnnualLeaveDays:  bal.AnnualLeaveDays,
			AbsenceLeaveDays: bal.AbsenceLeaveDays,
		},
		BalanceWarning: warning,
	}, nil
}

func (s *service) enqueueDecidedEvent(ctx context.Context, tx *sql.Tx, r *request.Request, actorID string, req DecideRequestDTO) error {
	payload, err := json.Marshal(events.RequestDecided{
		RequestID:     r.ID.String(),
		EmployeeID:    r.EmployeeID.String(),
		Kind:          string(r.Kind),
		Decision:      req.Decision,
		Days:          r.Days,
		Year:          r.Year,
		ResponsibleID: actorID,
		Comment:       req.Comment,
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: events.AggregateRequest,
		AggregateID:   r.ID.String(),
		EventType:     events.TypeRequestDecided,
		Topic:         events.TopicRequests,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GetByRequest(ctx context.Context, requestID string) (ValidationResponse, error) {
	v, err := s.validations.FindByRequest(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ValidationResponse{}, requesterrors.ErrRequestNotFound
		}
		return ValidationResponse{}, err
	}
	return mapToResponse(*v), nil
}

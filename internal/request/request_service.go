package request

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Ezra12363/Conge-sub001/internal/balance"
	"github.com/Ezra12363/Conge-sub001/internal/domain"
	"github.com/Ezra12363/Conge-sub001/internal/employee"
	employeeerrors "github.com/Ezra12363/Conge-sub001/internal/employee/errors"
	"github.com/Ezra12363/Conge-sub001/internal/history"
	requesterrors "github.com/Ezra12363/Conge-sub001/internal/request/errors"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=request_service.go -destination=mock/request_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateRequestDTO) (RequestResponse, error)
	GetAll(ctx context.Context, actorID, role string) ([]RequestResponse, error)
	GetByID(ctx context.Context, actorID, role, id string) (RequestResponse, error)
	Update(ctx context.Context, actorID, role, id string, req UpdateRequestDTO) (RequestResponse, error)
	Cancel(ctx context.Context, actorID, role, id string) (RequestResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	balances  balance.Repository
	employees employee.Repository
	histories history.Repository
	rdb       *redis.Client
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	balances balance.Repository,
	employees employee.Repository,
	histories history.Repository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		balances:  balances,
		employees: employees,
		histories: histories,
		rdb:       rdb,
		logger:    l,
	}
}

func canReadAll(role string) bool {
	return role == employee.RoleRH || role == employee.RoleAdmin
}

// Create persists a new request in PENDING status. The balance is read
// (and lazily seeded) to snapshot the entitlement, but never debited here;
// debits happen on approval only. An insufficient balance does not block
// submission, it is surfaced as a shortfall warning on the response.
func (s *service) Create(ctx context.Context, actorID string, req CreateRequestDTO) (RequestResponse, error) {
	s.logger.Debug("create request requested",
		zap.String("actor_id", actorID),
		zap.String("kind", req.Kind),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RequestResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	kind := domain.Kind(req.Kind)
	if !kind.Valid() {
		return RequestResponse{}, requesterrors.ErrInvalidKind
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return RequestResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return RequestResponse{}, err
	}
	days, err := ComputeDays(startDate, endDate)
	if err != nil {
		return RequestResponse{}, err
	}

	year := req.Year
	if year == 0 {
		year = startDate.Year()
	}

	emp, err := s.employees.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return RequestResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create request begin tx failed", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qbal := s.balances.WithTx(tx)

	bal, err := balance.GetOrCreate(ctx, qbal, emp.ID, year, emp.Role, emp.Grade)
	if err != nil {
		s.logger.Error("create request load balance failed", zap.Error(err))
		return RequestResponse{}, err
	}

	counter := bal.AnnualLeaveDays
	if kind == domain.KindAbsence {
		counter = bal.AbsenceLeaveDays
	}

	var attachmentRef *string
	if req.AttachmentRef != "" {
		attachmentRef = &req.AttachmentRef
	}

	r := &Request{
		ID:                  uuid.New(),
		EmployeeID:          actorUUID,
		Kind:                kind,
		Year:                year,
		EntitlementSnapshot: counter,
		Location:            req.Location,
		StartDate:           startDate,
		EndDate:             endDate,
		Days:                days,
		Status:              domain.StatusPending,
		Comment:             req.Comment,
		AttachmentRef:       attachmentRef,
	}

	if err := qtx.Create(ctx, r); err != nil {
		s.logger.Error("create request persist failed", zap.Error(err))
		return RequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create request commit failed", zap.Error(err))
		return RequestResponse{}, err
	}

	resp := mapToResponse(*r)
	resp.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if counter < days {
		resp.InsufficientBalance = true
		resp.ShortfallDays = days - counter
		s.logger.Warn("request created with insufficient balance",
			zap.String("request_id", r.ID.String()),
			zap.String("employee_id", actorID),
			zap.Int("shortfall_days", resp.ShortfallDays),
		)
	}

	s.logger.Info("create request success",
		zap.String("request_id", r.ID.String()),
		zap.String("employee_id", actorID),
		zap.Int("days", days),
	)
	return resp, nil
}

func (s *service) GetAll(ctx context.Context, actorID, role string) ([]RequestResponse, error) {
	var (
		requests []Request
		err      error
	)
	if canReadAll(role) {
		requests, err = s.repo.FindAll(ctx)
	} else {
		requests, err = s.repo.FindAllByEmployee(ctx, actorID)
	}
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func (s *service) GetByID(ctx context.Context, actorID, role, id string) (RequestResponse, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, requesterrors.ErrRequestNotFound
		}
		return RequestResponse{}, err
	}
	if !canReadAll(role) && r.EmployeeID.String() != actorID {
		return RequestResponse{}, requesterrors.ErrNotRequestOwner
	}
	return mapToResponse(*r), nil
}

// Update edits a request. Pending requests take a plain field update with
// the day count recomputed. Approved requests take a compensating balance
// adjustment: the old day count is restored to the old kind's counter and
// the new day count debited from the new kind's counter, all under row
// locks in one transaction. Rejected and cancelled requests are terminal.
func (s *service) Update(ctx context.Context, actorID, role, id string, req UpdateRequestDTO) (RequestResponse, error) {
	s.logger.Debug("update request requested",
		zap.String("request_id", id),
		zap.String("actor_id", actorID),
	)

	if _, err := uuid.Parse(id); err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidRequestID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RequestResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	newKind := domain.Kind(req.Kind)
	if !newKind.Valid() {
		return RequestResponse{}, requesterrors.ErrInvalidKind
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return RequestResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return RequestResponse{}, err
	}
	newDays, err := ComputeDays(startDate, endDate)
	if err != nil {
		return RequestResponse{}, err
	}
	newYear := req.Year
	if newYear == 0 {
		newYear = startDate.Year()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update request begin tx failed", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qbal := s.balances.WithTx(tx)
	qhist := s.histories.WithTx(tx)

	r, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RequestResponse{}, requesterrors.ErrRequestNotFound
		}
		return RequestResponse{}, err
	}

	if !canReadAll(role) && r.EmployeeID.String() != actorID {
		return RequestResponse{}, requesterrors.ErrNotRequestOwner
	}

	switch r.Status {
	case domain.StatusPending:
		// no balance effect before approval

	case domain.StatusApproved:
		emp, err := s.employees.FindByID(ctx, r.EmployeeID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return RequestResponse{}, employeeerrors.ErrEmployeeNotFound
			}
			return RequestResponse{}, err
		}
		if err := s.reallocate(ctx, qbal, emp, r, newKind, newYear, newDays); err != nil {
			return RequestResponse{}, err
		}

	default:
		return RequestResponse{}, requesterrors.ErrNotEditable(string(r.Status))
	}

	var attachmentRef *string
	if req.AttachmentRef != "" {
		attachmentRef = &req.AttachmentRef
	}

	r.Kind = newKind
	r.Year = newYear
	r.Location = req.Location
	r.StartDate = startDate
	r.EndDate = endDate
	r.Days = newDays
	r.Comment = req.Comment
	r.AttachmentRef = attachmentRef

	if err := qtx.Update(ctx, r); err != nil {
		s.logger.Error("update request persist failed",
			zap.String("request_id", id),
			zap.Error(err),
		)
		return RequestResponse{}, err
	}

	if err := qhist.Create(ctx, history.NewEntry(r.ID, actorUUID, history.ActionEdited)); err != nil {
		s.logger.Error("update request history failed",
			zap.String("request_id", id),
			zap.Error(err),
		)
		return RequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update request commit failed",
			zap.String("request_id", id),
			zap.Error(err),
		)
		return RequestResponse{}, err
	}

	balance.InvalidateCache(ctx, s.rdb, r.EmployeeID.String())

	s.logger.Info("update request success",
		zap.String("request_id", id),
		zap.String("status", string(r.Status)),
	)
	return mapToResponse(*r), nil
}

// reallocate applies the compensating adjustment for an edit of an
// approved request: restore the old days, debit the new ones.
func (s *service) reallocate(
	ctx context.Context,
	qbal balance.Repository,
	emp *employee.Employee,
	r *Request,
	newKind domain.Kind,
	newYear, newDays int,
) error {
	oldBal, err := balance.GetOrCreateForUpdate(ctx, qbal, r.EmployeeID, r.Year, emp.Role, emp.Grade)
	if err != nil {
		return err
	}

	credit(oldBal, r.Kind, r.Days)

	if newYear == r.Year {
		credit(oldBal, newKind, -newDays)
		return qbal.UpdateCounters(ctx, oldBal.ID.String(), oldBal.AnnualLeaveDays, oldBal.AbsenceLeaveDays)
	}

	if err := qbal.UpdateCounters(ctx, oldBal.ID.String(), oldBal.AnnualLeaveDays, oldBal.AbsenceLeaveDays); err != nil {
		return err
	}

	newBal, err := balance.GetOrCreateForUpdate(ctx, qbal, r.EmployeeID, newYear, emp.Role, emp.Grade)
	if err != nil {
		return err
	}
	credit(newBal, newKind, -newDays)
	return qbal.UpdateCounters(ctx, newBal.ID.String(), newBal.AnnualLeaveDays, newBal.AbsenceLeaveDays)
}

func credit(b *balance.Balance, kind domain.Kind, days int) {
	switch kind {
	case domain.KindAbsence:
		b.AbsenceLeaveDays += days
	default:
		b.AnnualLeaveDays += days
	}
}

// Cancel moves a pending request to CANCELLED. No balance effect.
func (s *service) Cancel(ctx context.Context, actorID, role, id string) (RequestResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RequestResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel request begin tx failed", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qhist := s.histories.WithTx(tx)

	r, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RequestResponse{}, requesterrors.ErrRequestNotFound
		}
		return RequestResponse{}, err
	}

	if !canReadAll(role) && r.EmployeeID.String() != actorID {
		return RequestResponse{}, requesterrors.ErrNotRequestOwner
	}

	if !domain.AllowedTransition(r.Status, domain.StatusCancelled) {
		s.logger.Warn("cancel request invalid status",
			zap.String("request_id", id),
			zap.String("status", string(r.Status)),
		)
		return RequestResponse{}, requesterrors.ErrNotPending(string(r.Status))
	}

	r.Status = domain.StatusCancelled
	if err := qtx.Update(ctx, r); err != nil {
		return RequestResponse{}, err
	}
	if err := qhist.Create(ctx, history.NewEntry(r.ID, actorUUID, history.ActionCancelled)); err != nil {
		return RequestResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel request commit failed",
			zap.String("request_id", id),
			zap.Error(err),
		)
		return RequestResponse{}, err
	}

	s.logger.Info("cancel request success", zap.String("request_id", id))
	return mapToResponse(*r), nil
}

package balance

import (
	"context"
	"errors"

	"github.com/Ezra12363/Conge-sub001/internal/domain"
	"github.com/Ezra12363/Conge-sub001/internal/employee"
	employeeerrors "github.com/Ezra12363/Conge-sub001/internal/employee/errors"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ApprovedDaysSource sums the day counts of approved requests of one kind
// whose start date falls in the given year. Implemented by the request
// repository.
type ApprovedDaysSource interface {
	SumApprovedDays(ctx context.Context, employeeID string, year int, kind domain.Kind) (int, error)
}

// Recalculator rebuilds a balance from scratch out of the approved request
// history: entitlement defaults minus used days, floored at zero. It is
// deliberately independent from the incremental debit path of the decision
// workflow; running it twice over an unchanged request set yields the same
// row both times.
type Recalculator struct {
	repo      Repository
	employees employee.Repository
	source    ApprovedDaysSource
	rdb       *redis.Client
	logger    *zap.Logger
}

func NewRecalculator(
	repo Repository,
	employees employee.Repository,
	source ApprovedDaysSource,
	rdb *redis.Client,
	logger ...*zap.Logger,
) *Recalculator {
	l := zap.L().Named("balance.recalculator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.recalculator")
	}
	return &Recalculator{repo: repo, employees: employees, source: source, rdb: rdb, logger: l}
}

func (r *Recalculator) Recalculate(ctx context.Context, employeeID string, year int) (*Balance, error) {
	emp, err := r.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	baseAnnual, baseAbsence := DefaultEntitlement(emp.Role, emp.Grade)

	usedLeave, err := r.source.SumApprovedDays(ctx, employeeID, year, domain.KindLeave)
	if err != nil {
		return nil, err
	}
	usedAbsence, err := r.source.SumApprovedDays(ctx, employeeID, year, domain.KindAbsence)
	if err != nil {
		return nil, err
	}

	remainingLeave := baseAnnual - usedLeave
	if remainingLeave < 0 {
		remainingLeave = 0
	}
	remainingAbsence := baseAbsence - usedAbsence
	if remainingAbsence < 0 {
		remainingAbsence = 0
	}

	b := &Balance{
		ID:               uuid.New(),
		EmployeeID:       emp.ID,
		Year:             year,
		AnnualLeaveDays:  remainingLeave,
		AbsenceLeaveDays: remainingAbsence,
	}
	if err := r.repo.Upsert(ctx, b); err != nil {
		return nil, err
	}

	InvalidateCache(ctx, r.rdb, employeeID)

	r.logger.Info("balance recalculated",
		zap.String("employee_id", employeeID),
		zap.Int("year", year),
		zap.Int("annual_leave_days", remainingLeave),
		zap.Int("absence_leave_days", remainingAbsence),
	)

	return r.repo.FindByEmployeeAndYear(ctx, employeeID, year)
}

// RecalculateAll reconciles every employee for one year, continuing past
// individual failures.
func (r *Recalculator) RecalculateAll(ctx context.Context, year int) error {
	employees, err := r.employees.FindAll(ctx)
	if err != nil {
		return err
	}

	var failed int
	for _, emp := range employees {
		if _, err := r.Recalculate(ctx, emp.ID.String(), year); err != nil {
			failed++
			r.logger.Error("recalculate employee failed",
				zap.String("employee_id", emp.ID.String()),
				zap.Int("year", year),
				zap.Error(err),
			)
		}
	}

	if failed > 0 {
		r.logger.Warn("recalculation finished with failures",
			zap.Int("failed", failed),
			zap.Int("total", len(employees)),
		)
	}
	return nil
}

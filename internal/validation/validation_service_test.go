package validation_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/Ezra12363/Conge-sub001/internal/balance"
	"github.com/Ezra12363/Conge-sub001/internal/domain"
	"github.com/Ezra12363/Conge-sub001/internal/employee"
	"github.com/Ezra12363/Conge-sub001/internal/history"
	"github.com/Ezra12363/Conge-sub001/internal/request"
	requesterrors "github.com/Ezra12363/Conge-sub001/internal/request/errors"
	"github.com/Ezra12363/Conge-sub001/internal/validation"
	validationerrors "github.com/Ezra12363/Conge-sub001/internal/validation/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRequestRepository struct {
	findByIDForUpdateFn func(ctx context.Context, id string) (*request.Request, error)
	updateFn            func(ctx context.Context, r *request.Request) error
}

func (f *fakeRequestRepository) WithTx(tx *sql.Tx) request.Repository { return f }

func (f *fakeRequestRepository) Create(ctx context.Context, r *request.Request) error {
	return errors.New("unexpected Create")
}

func (f *fakeRequestRepository) FindAll(ctx context.Context) ([]request.Request, error) {
	return nil, errors.New("unexpected FindAll")
}

func (f *fakeRequestRepository) FindAllByEmployee(ctx context.Context, employeeID string) ([]request.Request, error) {
	return nil, errors.New("unexpected FindAllByEmployee")
}

func (f *fakeRequestRepository) FindByID(ctx context.Context, id string) (*request.Request, error) {
	return nil, sql.ErrNoRows
}

func (f *fakeRequestRepository) FindByIDForUpdate(ctx context.Context, id string) (*request.Request, error) {
	if f.findByIDForUpdateFn != nil {
		return f.findByIDForUpdateFn(ctx, id)
	}
	return nil, sql.ErrNoRows
}

func (f *fakeRequestRepository) Update(ctx context.Context, r *request.Request) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, r)
	}
	return nil
}

func (f *fakeRequestRepository) SumApprovedDays(ctx context.Context, employeeID string, year int, kind domain.Kind) (int, error) {
	return 0, nil
}

type fakeBalanceRepository struct {
	findByEmployeeAndYearForUpdateFn func(ctx context.Context, employeeID string, year int) (*balance.Balance, error)
	updateCountersFn                 func(ctx context.Context, id string, annualDays, absenceDays int) error
}

func (f *fakeBalanceRepository) WithTx(tx *sql.Tx) balance.Repository { return f }

func (f *fakeBalanceRepository) FindAll(ctx context.Context) ([]balance.Balance, error) {
	return nil, nil
}

func (f *fakeBalanceRepository) FindAllByEmployee(ctx context.Context, employeeID string) ([]balance.Balance, error) {
	return nil, nil
}

func (f *fakeBalanceRepository) FindByEmployeeAndYear(ctx context.Context, employeeID string, year int) (*balance.Balance, error) {
	return nil, sql.ErrNoRows
}

func (f *fakeBalanceRepository) FindByEmployeeAndYearForUpdate(ctx context.Context, employeeID string, year int) (*balance.Balance, error) {
	if f.findByEmployeeAndYearForUpdateFn != nil {
		return f.findByEmployeeAndYearForUpdateFn(ctx, employeeID, year)
	}
	return nil, sql.ErrNoRows
}

func (f *fakeBalanceRepository) Create(ctx context.Context, b *balance.Balance) error { return nil }

func (f *fakeBalanceRepository) UpdateCounters(ctx context.Context, id string, annualDays, absenceDays int) error {
	if f.updateCountersFn != nil {
		return f.updateCountersFn(ctx, id, annualDays, absenceDays)
	}
	return nil
}

func (f *fakeBalanceRepository) Upsert(ctx context.Context, b *balance.Balance) error { return nil }

type fakeValidationRepository struct {
	upsertFn        func(ctx context.Context, v *validation.Validation) error
	findByRequestFn func(ctx context.Context, requestID string) (*validation.Validation, error)
}

func (f *fakeValidationRepository) WithTx(tx *sql.Tx) validation.Repository { return f }

func (f *fakeValidationRepository) UpsertForRequest(ctx context.Context, v *validation.Validation) error {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, v)
	}
	return nil
}

func (f *fakeValidationRepository) FindByRequest(ctx context.Context, requestID string) (*validation.Validation, error) {
	if f.findByRequestFn != nil {
		return f.findByRequestFn(ctx, requestID)
	}
	return nil, sql.ErrNoRows
}

type fakeHistoryRepository struct {
	createFn func(ctx context.Context, h *history.History) error
}

func (f *fakeHistoryRepository) WithTx(tx *sql.Tx) history.Repository { return f }

func (f *fakeHistoryRepository) Create(ctx context.Context, h *history.History) error {
	if f.createFn != nil {
		return f.createFn(ctx, h)
	}
	return nil
}

func (f *fakeHistoryRepository) ListFor(ctx context.Context, requestID string, after *time.Time, limit int) ([]history.History, error) {
	return nil, nil
}

type fakeEmployeeRepository struct {
	findByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository                  { return f }
func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error            { return nil }

func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, errors.New("unexpected FindByID")
}

func (f *fakeEmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, errors.New("unexpected FindByEmail")
}

type validationServiceDeps struct {
	db          *sql.DB
	sqlMock     sqlmock.Sqlmock
	service     validation.Service
	requests    *fakeRequestRepository
	balances    *fakeBalanceRepository
	validations *fakeValidationRepository
	histories   *fakeHistoryRepository
	employees   *fakeEmployeeRepository
}

func setupValidationServiceTest(t *testing.T) *validationServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	requests := &fakeRequestRepository{}
	balances := &fakeBalanceRepository{}
	validations := &fakeValidationRepository{}
	histories := &fakeHistoryRepository{}
	employees := &fakeEmployeeRepository{}
	svc := validation.NewService(db, requests, balances, validations, histories, employees, nil, nil)

	return &validationServiceDeps{
		db:          db,
		sqlMock:     sqlMock,
		service:     svc,
		requests:    requests,
		balances:    balances,
		validations: validations,
		histories:   histories,
		employees:   employees,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func pendingRequest(id, employeeID uuid.UUID, kind domain.Kind, days int) *request.Request {
	return &request.Request{
		ID:         id,
		EmployeeID: employeeID,
		Kind:       kind,
		Year:       2026,
		Days:       days,
		StartDate:  time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 2+days-1, 0, 0, 0, 0, time.UTC),
		Status:     domain.StatusPending,
	}
}

func TestValidationService_Decide(t *testing.T) {
	ctx := context.Background()
	responsibleUUID := uuid.New()
	responsibleID := responsibleUUID.String()
	employeeUUID := uuid.New()
	requestID := uuid.New()

	t.Run("approval debits the annual counter", func(t *testing.T) {
		deps := setupValidationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.requests.findByIDForUpdateFn = func(ctx context.Context, id string) (*request.Request, error) {
			assert.Equal(t, requestID.String(), id)
			return pendingRequest(requestID, employeeUUID, domain.KindLeave, 3), nil
		}
		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: employeeUUID, Role: employee.RoleEmploye, Grade: "C"}, nil
		}
		balID := uuid.New()
		deps.balances.findByEmployeeAndYearForUpdateFn = func(ctx context.Context, employeeID string, year int) (*balance.Balance, error) {
			assert.Equal(t, employeeUUID.String(), employeeID)
			assert.Equal(t, 2026, year)
			return &balance.Balance{
				ID:               balID,
				EmployeeID:       employeeUUID,
				Year:             year,
				AnnualLeaveDays:  21,
				AbsenceLeaveDays: 15,
			}, nil
		}
		var gotAnnual, gotAbsence int
		deps.balances.updateCountersFn = func(ctx context.Context, id string, annualDays, absenceDays int) error {
			assert.Equal(t, balID.String(), id)
			gotAnnual, gotAbsence = annualDays, absenceDays
			return nil
		}
		deps.requests.updateFn = func(ctx context.Context, r *request.Request) error {
			assert.Equal(t, domain.StatusApproved, r.Status)
			return nil
		}
		var upserted *validation.Validation
		deps.validations.upsertFn = func(ctx context.Context, v *validation.Validation) error {
			upserted = v
			return nil
		}
		var recorded *history.History
		deps.histories.createFn = func(ctx context.Context, h *history.History) error {
			recorded = h
			return nil
		}

		resp, err := deps.service.Decide(ctx, responsibleID, validation.DecideRequestDTO{
			RequestID: requestID.String(),
			Decision:  "approved",
			Comment:   "ok pour mars",
		})

		assert.NoError(t, err)
		assert.Equal(t, 18, gotAnnual)
		assert.Equal(t, 15, gotAbsence)
		assert.Equal(t, string(domain.StatusApproved), resp.Request.Status)
		assert.Equal(t, 18, resp.Balance.AnnualLeaveDays)
		assert.False(t, resp.BalanceWarning)
		assert.NotNil(t, upserted)
		assert.Equal(t, responsibleUUID, upserted.ResponsibleID)
		assert.Equal(t, "approved", *upserted.Decision)
		assert.NotNil(t, recorded)
		assert.Equal(t, "approved", recorded.Action)
		assert.Equal(t, responsibleUUID, recorded.ActorID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("approval may drive the counter negative with a warning", func(t *testing.T) {
		deps := setupValidationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.requests.findByIDForUpdateFn = func(ctx context.Context, id string) (*request.Request, error) {
			return pendingRequest(requestID, employeeUUID, domain.KindAbsence, 4), nil
		}
		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: employeeUUID, Role: employee.RoleEmploye, Grade: "C"}, nil
		}
		deps.balances.findByEmployeeAndYearForUpdateFn = func(ctx context.Context, employeeID string, year int) (*balance.Balance, error) {
			return &balance.Balance{
				ID:               uuid.New(),
				EmployeeID:       employeeUUID,
				Year:             year,
				AnnualLeaveDays:  21,
				AbsenceLeaveDays: 2,
			}, nil
		}

		resp, err := deps.service.Decide(ctx, responsibleID, validation.DecideRequestDTO{
			RequestID: requestID.String(),
			Decision:  "approved",
		})

		assert.NoError(t, err)
		assert.True(t, resp.BalanceWarning)
		assert.Equal(t, -2, resp.Balance.AbsenceLeaveDays)
		assert.Equal(t, 21, resp.Balance.AnnualLeaveDays)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("rejection leaves the counters untouched", func(t *testing.T) {
		deps := setupValidationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.requests.findByIDForUpdateFn = func(ctx context.Context, id string) (*request.Request, error) {
			return pendingRequest(requestID, employeeUUID, domain.KindLeave, 3), nil
		}
		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: employeeUUID, Role: employee.RoleEmploye, Grade: "C"}, nil
		}
		deps.balances.findByEmployeeAndYearForUpdateFn = func(ctx context.Context, employeeID string, year int) (*balance.Balance, error) {
			return &balance.Balance{
				ID:               uuid.New(),
				EmployeeID:       employeeUUID,
				Year:             year,
				AnnualLeaveDays:  21,
				AbsenceLeaveDays: 15,
			}, nil
		}
		deps.balances.updateCountersFn = func(ctx context.Context, id string, annualDays, absenceDays int) error {
			t.Fatal("rejection must not touch the counters")
			return nil
		}
		deps.requests.updateFn = func(ctx context.Context, r *request.Request) error {
			assert.Equal(t, domain.StatusRejected, r.Status)
			return nil
		}

		resp, err := deps.service.Decide(ctx, responsibleID, validation.DecideRequestDTO{
			RequestID: requestID.String(),
			Decision:  "rejected",
			Comment:   "effectif insuffisant",
		})

		assert.NoError(t, err)
		assert.Equal(t, string(domain.StatusRejected), resp.Request.Status)
		assert.Equal(t, 21, resp.Balance.AnnualLeaveDays)
		assert.False(t, resp.BalanceWarning)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative already decided request", func(t *testing.T) {
		deps := setupValidationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.requests.findByIDForUpdateFn = func(ctx context.Context, id string) (*request.Request, error) {
			r := pendingRequest(requestID, employeeUUID, domain.KindLeave, 3)
			r.Status = domain.StatusApproved
			return r, nil
		}

		_, err := deps.service.Decide(ctx, responsibleID, validation.DecideRequestDTO{
			RequestID: requestID.String(),
			Decision:  "approved",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "APPROVED")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative deciding own request", func(t *testing.T) {
		deps := setupValidationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.requests.findByIDForUpdateFn = func(ctx context.Context, id string) (*request.Request, error) {
			return pendingRequest(requestID, responsibleUUID, domain.KindLeave, 3), nil
		}

		_, err := deps.service.Decide(ctx, responsibleID, validation.DecideRequestDTO{
			RequestID: requestID.String(),
			Decision:  "approved",
		})

		assert.ErrorIs(t, err, validationerrors.ErrOwnRequestDecision)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative unknown decision", func(t *testing.T) {
		deps := setupValidationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Decide(ctx, responsibleID, validation.DecideRequestDTO{
			RequestID: requestID.String(),
			Decision:  "maybe",
		})

		assert.ErrorIs(t, err, validationerrors.ErrInvalidDecision)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative missing request", func(t *testing.T) {
		deps := setupValidationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Decide(ctx, responsibleID, validation.DecideRequestDTO{
			RequestID: requestID.String(),
			Decision:  "rejected",
		})

		assert.ErrorIs(t, err, requesterrors.ErrRequestNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestValidationService_GetByRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupValidationServiceTest(t)
		defer deps.db.Close()

		requestID := uuid.New()
		decision := "approved"
		decidedAt := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
		deps.validations.findByRequestFn = func(ctx context.Context, id string) (*validation.Validation, error) {
			return &validation.Validation{
				ID:            uuid.New(),
				RequestID:     requestID,
				ResponsibleID: uuid.New(),
				Decision:      &decision,
				Comment:       "ok",
				DecidedAt:     &decidedAt,
			}, nil
		}

		resp, err := deps.service.GetByRequest(ctx, requestID.String())

		assert.NoError(t, err)
		assert.Equal(t, requestID.String(), resp.RequestID)
		assert.Equal(t, "approved", *resp.Decision)
		assert.NotNil(t, resp.DecidedAt)
	})

	t.Run("negative no decision yet", func(t *testing.T) {
		deps := setupValidationServiceTest(t)
		defer deps.db.Close()

		deps.validations.findByRequestFn = func(ctx context.Context, id string) (*validation.Validation, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.GetByRequest(ctx, uuid.New().String())

		assert.ErrorIs(t, err, requesterrors.ErrRequestNotFound)
	})
}

package balance

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

// GetOrCreate materializes the balance row for (employee, year), seeding
// it with the role/grade entitlement defaults when it does not exist yet.
// Creation is always explicit here, never a hidden side effect of a read.
func GetOrCreate(ctx context.Context, repo Repository, employeeID uuid.UUID, year int, role, grade string) (*Balance, error) {
	return getOrCreate(ctx, repo, employeeID, year, role, grade, false)
}

// GetOrCreateForUpdate is GetOrCreate with a FOR UPDATE row lock on the
// returned balance. Must run inside a transaction.
func GetOrCreateForUpdate(ctx context.Context, repo Repository, employeeID uuid.UUID, year int, role, grade string) (*Balance, error) {
	return getOrCreate(ctx, repo, employeeID, year, role, grade, true)
}

func getOrCreate(ctx context.Context, repo Repository, employeeID uuid.UUID, year int, role, grade string, forUpdate bool) (*Balance, error) {
	find := repo.FindByEmployeeAndYear
	if forUpdate {
		find = repo.FindByEmployeeAndYearForUpdate
	}

	b, err := find(ctx, employeeID.String(), year)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	annual, absence := DefaultEntitlement(role, grade)
	created := &Balance{
		ID:               uuid.New(),
		EmployeeID:       employeeID,
		Year:             year,
		AnnualLeaveDays:  annual,
		AbsenceLeaveDays: absence,
	}

	if err := repo.Create(ctx, created); err != nil {
		// Lost the creation race against a concurrent caller; their row
		// is the one that counts.
		if IsUniqueViolation(err) {
			return find(ctx, employeeID.String(), year)
		}
		return nil, err
	}

	return created, nil
}

package balance

import (
	"time"

	"github.com/google/uuid"
)

// Balance holds the two per-year day counters of one employee. At most one
// row exists per (employee_id, year); it is never deleted, only reset.
type Balance struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_solde_conges_employee_year"`
	Year       int       `gorm:"not null;uniqueIndex:idx_solde_conges_employee_year"`

	AnnualLeaveDays  int `gorm:"not null;default:0"`
	AbsenceLeaveDays int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Balance) TableName() string {
	return "solde_conges"
}

package balance

import (
	"math"

	"github.com/Ezra12363/Conge-sub001/internal/employee"
)

const (
	BaseAnnualDays  = 30
	BaseAbsenceDays = 15
	MaxAnnualDays   = 45
	MaxAbsenceDays  = 25
)

func roleSurcharge(role string) (annual, absence int) {
	switch role {
	case employee.RoleAdmin:
		return 5, 3
	case employee.RoleRH:
		return 3, 2
	default:
		return 0, 0
	}
}

func gradeMultiplier(grade string) float64 {
	switch grade {
	case "A1":
		return 1.20
	case "A2":
		return 1.15
	case "B1":
		return 1.10
	case "B2":
		return 1.05
	default:
		return 1.0
	}
}

// DefaultEntitlement derives the yearly day entitlements from role and
// grade: (base + role surcharge) scaled by the grade multiplier, rounded
// up, then capped.
func DefaultEntitlement(role, grade string) (annual, absence int) {
	surAnnual, surAbsence := roleSurcharge(role)
	mult := gradeMultiplier(grade)

	annual = int(math.Ceil(float64(BaseAnnualDays+surAnnual) * mult))
	absence = int(math.Ceil(float64(BaseAbsenceDays+surAbsence) * mult))

	if annual > MaxAnnualDays {
		annual = MaxAnnualDays
	}
	if absence > MaxAbsenceDays {
		absence = MaxAbsenceDays
	}
	return annual, absence
}

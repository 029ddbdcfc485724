package balance_test

import (
	"testing"

	"github.com/Ezra12363/Conge-sub001/internal/balance"
	"github.com/Ezra12363/Conge-sub001/internal/employee"

	"github.com/stretchr/testify/assert"
)

func TestDefaultEntitlement(t *testing.T) {
	tests := []struct {
		name        string
		role        string
		grade       string
		wantAnnual  int
		wantAbsence int
	}{
		{"employe grade C", employee.RoleEmploye, "C", 30, 15},
		{"employe grade B2", employee.RoleEmploye, "B2", 32, 16},
		{"employe grade A1", employee.RoleEmploye, "A1", 36, 18},
		{"rh grade A2", employee.RoleRH, "A2", 38, 20},
		{"admin grade A1", employee.RoleAdmin, "A1", 42, 22},
		{"admin grade B1", employee.RoleAdmin, "B1", 39, 20},
		{"unknown grade falls back to base", employee.RoleEmploye, "Z9", 30, 15},
		{"unknown role gets no surcharge", "stagiaire", "A1", 36, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			annual, absence := balance.DefaultEntitlement(tt.role, tt.grade)
			assert.Equal(t, tt.wantAnnual, annual)
			assert.Equal(t, tt.wantAbsence, absence)
		})
	}
}

func TestDefaultEntitlementStaysUnderCaps(t *testing.T) {
	for _, role := range []string{employee.RoleEmploye, employee.RoleRH, employee.RoleAdmin} {
		for _, grade := range []string{"A1", "A2", "B1", "B2", "C"} {
			annual, absence := balance.DefaultEntitlement(role, grade)
			assert.LessOrEqual(t, annual, balance.MaxAnnualDays)
			assert.LessOrEqual(t, absence, balance.MaxAbsenceDays)
		}
	}
}

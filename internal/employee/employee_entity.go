package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleEmploye = "employe"
	RoleRH      = "rh"
	RoleAdmin   = "admin"
)

type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName  string    `gorm:"type:varchar(120);not null"`
	Email     string    `gorm:"type:varchar(120);uniqueIndex;not null"`
	Matricule string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Corps     string    `gorm:"type:varchar(60)"`
	Grade     string    `gorm:"type:varchar(10);not null;default:'C'"`
	Role      string    `gorm:"type:varchar(20);not null;default:'employe'"`
	HireDate  time.Time `gorm:"type:date;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_employes_deleted_at"`
}

func (Employee) TableName() string {
	return "employes"
}

func IsValidRole(role string) bool {
	switch role {
	case RoleEmploye, RoleRH, RoleAdmin:
		return true
	default:
		return false
	}
}

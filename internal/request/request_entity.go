package request

import (
	"time"

	"github.com/Ezra12363/Conge-sub001/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Request is one leave or absence application over an inclusive date
// range. EntitlementSnapshot freezes the relevant balance counter as it
// was when the request was submitted.
type Request struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID   `gorm:"type:uuid;not null;index:idx_demandes_employee_dates"`
	Kind       domain.Kind `gorm:"type:varchar(10);not null"`
	Year       int         `gorm:"not null"`

	EntitlementSnapshot int    `gorm:"not null;default:0"`
	Location            string `gorm:"type:varchar(120)"`

	StartDate time.Time `gorm:"type:date;not null;index:idx_demandes_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Days      int       `gorm:"not null;default:1"`

	Status        domain.Status `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_demandes_status"`
	Comment       string        `gorm:"type:text"`
	AttachmentRef *string       `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_demandes_deleted_at"`
}

func (Request) TableName() string {
	return "demandes"
}

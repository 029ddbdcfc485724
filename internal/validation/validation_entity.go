package validation

import (
	"time"

	"github.com/google/uuid"
)

// Validation is the decision record attached to a request. One row per
// request; a repeated decide overwrites it (latest wins), though the
// workflow only ever decides a pending request once.
type Validation struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequestID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_validations_request"`
	ResponsibleID uuid.UUID `gorm:"type:uuid;not null"`
	Decision      *string   `gorm:"type:varchar(20)"`
	Comment       string    `gorm:"type:text"`
	DecidedAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Validation) TableName() string {
	return "validations"
}

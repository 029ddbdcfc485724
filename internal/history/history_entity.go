package history

import (
	"time"

	"github.com/google/uuid"
)

// History is one append-only audit entry for a request status transition.
// Rows are never updated or deleted.
type History struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequestID uuid.UUID `gorm:"type:uuid;not null;index:idx_historiques_request"`
	Action    string    `gorm:"type:varchar(30);not null"`
	ActorID   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
}

func (History) TableName() string {
	return "historiques"
}

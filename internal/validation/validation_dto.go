package validation

import (
	"time"

	"github.com/Ezra12363/Conge-sub001/internal/request"
)

type DecideRequestDTO struct {
	RequestID string `json:"request_id" binding:"required,uuid"`
	Decision  string `json:"decision" binding:"required,oneof=approved rejected"`
	Comment   string `json:"comment"`
}

// BalanceSnapshot is the post-decision state of both counters so callers
// can display the remaining entitlement.
type BalanceSnapshot struct {
	AnnualLeaveDays  int `json:"annual_leave_days"`
	AbsenceLeaveDays int `json:"absence_leave_days"`
}

type DecisionResponse struct {
	Request request.RequestResponse `json:"request"`
	Balance BalanceSnapshot         `json:"balance"`

	// BalanceWarning flags an approval that drove a counter negative.
	BalanceWarning bool `json:"balance_warning,omitempty"`
}

type ValidationResponse struct {
	ID            string  `json:"id"`
	RequestID     string  `json:"request_id"`
	ResponsibleID string  `json:"responsible_id"`
	Decision      *string `json:"decision"`
	Comment       string  `json:"comment,omitempty"`
	DecidedAt     *string `json:"decided_at,omitempty"`
}

func mapToResponse(v Validation) ValidationResponse {
	resp := ValidationResponse{
		ID:            v.ID.String(),
		RequestID:     v.RequestID.String(),
		ResponsibleID: v.ResponsibleID.String(),
		Decision:      v.Decision,
		Comment:       v.Comment,
	}
	if v.DecidedAt != nil {
		s := v.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &s
	}
	return resp
}

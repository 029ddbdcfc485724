package request

import "time"

type CreateRequestDTO struct {
	Kind          string `json:"kind" binding:"required,oneof=leave absence"`
	Year          int    `json:"year"`
	Location      string `json:"location"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
	Comment       string `json:"comment"`
	AttachmentRef string `json:"attachment_ref"`
}

type UpdateRequestDTO struct {
	Kind          string `json:"kind" binding:"required,oneof=leave absence"`
	Year          int    `json:"year"`
	Location      string `json:"location"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
	Comment       string `json:"comment"`
	AttachmentRef string `json:"attachment_ref"`
}

type RequestResponse struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employee_id"`
	Kind                string  `json:"kind"`
	Year                int     `json:"year"`
	EntitlementSnapshot int     `json:"entitlement_at_request"`
	Location            string  `json:"location,omitempty"`
	StartDate           string  `json:"start_date"`
	EndDate             string  `json:"end_date"`
	Days                int     `json:"nb_jours"`
	Status              string  `json:"status"`
	Comment             string  `json:"comment,omitempty"`
	AttachmentRef       *string `json:"attachment_ref,omitempty"`
	CreatedAt           string  `json:"created_at,omitempty"`

	// Shortfall warning: creation succeeds even when the balance cannot
	// cover the requested days, but the caller must be able to flag it.
	InsufficientBalance bool `json:"insufficient_balance,omitempty"`
	ShortfallDays       int  `json:"shortfall_days,omitempty"`
}

// ToResponse exposes the response mapping to the validation workflow,
// which returns the decided request alongside the balance snapshot.
func ToResponse(r Request) RequestResponse {
	return mapToResponse(r)
}

func mapToResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:                  r.ID.String(),
		EmployeeID:          r.EmployeeID.String(),
		Kind:                string(r.Kind),
		Year:                r.Year,
		EntitlementSnapshot: r.EntitlementSnapshot,
		Location:            r.Location,
		StartDate:           r.StartDate.Format("2006-01-02"),
		EndDate:             r.EndDate.Format("2006-01-02"),
		Days:                r.Days,
		Status:              string(r.Status),
		Comment:             r.Comment,
		AttachmentRef:       r.AttachmentRef,
	}
	if !r.CreatedAt.IsZero() {
		resp.CreatedAt = r.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(requests []Request) []RequestResponse {
	resp := make([]RequestResponse, len(requests))
	for i, r := range requests {
		resp[i] = mapToResponse(r)
	}
	return resp
}

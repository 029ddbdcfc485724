package domain

// Kind distinguishes the two request categories, each governed by its own
// balance counter.
type Kind string

const (
	KindLeave   Kind = "leave"
	KindAbsence Kind = "absence"
)

func (k Kind) Valid() bool {
	switch k {
	case KindLeave, KindAbsence:
		return true
	default:
		return false
	}
}

// Status is the closed set of request lifecycle states. The only legal
// transitions are PENDING -> APPROVED | REJECTED | CANCELLED.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further decision can be applied.
func (s Status) Terminal() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

func AllowedTransition(from, to Status) bool {
	if from != StatusPending {
		return false
	}
	switch to {
	case StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

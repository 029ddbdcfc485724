package events

const (
	TopicRequests      = "conges.requests"
	TypeRequestDecided = "request.decided"
	AggregateRequest   = "request"
)

// RequestDecided is published whenever a leave/absence request leaves the
// pending state through an approve or reject decision.
type RequestDecided struct {
	RequestID     string `json:"request_id"`
	EmployeeID    string `json:"employee_id"`
	Kind          string `json:"kind"`
	Decision      string `json:"decision"`
	Days          int    `json:"days"`
	Year          int    `json:"year"`
	ResponsibleID string `json:"responsible_id"`
	Comment       string `json:"comment,omitempty"`
}

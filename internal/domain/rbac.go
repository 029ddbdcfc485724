package domain

// EnforceRequest carries everything the authorization layer needs to
// answer "may this employee perform this action on this resource".
type EnforceRequest struct {
	EmployeeID string
	Role       string
	Resource   string
	Action     string
}

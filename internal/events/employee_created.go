package events

const (
	TopicEmployees      = "conges.employees"
	TypeEmployeeCreated = "employee.created"
	AggregateEmployee   = "employee"
)

type EmployeeCreated struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Matricule  string `json:"matricule"`
	Role       string `json:"role"`
	Grade      string `json:"grade"`
	HireDate   string `json:"hire_date"`
}

package employee

type CreateEmployeeRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Matricule string `json:"matricule"`
	Corps     string `json:"corps"`
	Grade     string `json:"grade" binding:"omitempty,oneof=A1 A2 B1 B2 C"`
	Role      string `json:"role" binding:"omitempty,oneof=employe rh admin"`
	HireDate  string `json:"hire_date" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Corps    string `json:"corps"`
	Grade    string `json:"grade" binding:"required,oneof=A1 A2 B1 B2 C"`
	Role     string `json:"role" binding:"required,oneof=employe rh admin"`
}

type EmployeeResponse struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Matricule string `json:"matricule"`
	Corps     string `json:"corps,omitempty"`
	Grade     string `json:"grade"`
	Role      string `json:"role"`
	HireDate  string `json:"hire_date"`
}

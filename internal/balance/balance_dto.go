package balance

type BalanceResponse struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	Year             int    `json:"year"`
	AnnualLeaveDays  int    `json:"annual_leave_days"`
	AbsenceLeaveDays int    `json:"absence_leave_days"`
}

func mapToResponse(b Balance) BalanceResponse {
	return BalanceResponse{
		ID:               b.ID.String(),
		EmployeeID:       b.EmployeeID.String(),
		Year:             b.Year,
		AnnualLeaveDays:  b.AnnualLeaveDays,
		AbsenceLeaveDays: b.AbsenceLeaveDays,
	}
}

func mapToListResponse(balances []Balance) []BalanceResponse {
	resp := make([]BalanceResponse, len(balances))
	for i, b := range balances {
		resp[i] = mapToResponse(b)
	}
	return resp
}

package balanceerrors

import (
	"net/http"

	"github.com/Ezra12363/Conge-sub001/internal/shared/apperror"
)

var (
	ErrBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"balance not found for this employee and year",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year must be a four digit calendar year",
		http.StatusBadRequest,
	)
)

package employeeerrors

import (
	"net/http"

	"github.com/Ezra12363/Conge-sub001/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid hire_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEmailAlreadyUsed = apperror.New(
		apperror.CodeConflict,
		"email is already used by another employee",
		http.StatusConflict,
	)
	ErrMatriculeAlreadyUsed = apperror.New(
		apperror.CodeConflict,
		"matricule is already used by another employee",
		http.StatusConflict,
	)
)

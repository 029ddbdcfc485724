package validationerrors

import (
	"net/http"

	"github.com/Ezra12363/Conge-sub001/internal/shared/apperror"
)

var (
	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidInput,
		"decision must be approved or rejected",
		http.StatusBadRequest,
	)
	ErrInvalidResponsibleID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid responsible id",
		http.StatusBadRequest,
	)
	ErrOwnRequestDecision = apperror.New(
		apperror.CodeForbidden,
		"you cannot decide your own request",
		http.StatusForbidden,
	)
)

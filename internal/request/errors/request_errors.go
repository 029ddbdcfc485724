package requesterrors

import (
	"fmt"
	"net/http"

	"github.com/Ezra12363/Conge-sub001/internal/shared/apperror"
)

var (
	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid request id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidRange,
		"end_date must be on or after start_date",
		http.StatusBadRequest,
	)
	ErrInvalidKind = apperror.New(
		apperror.CodeInvalidInput,
		"kind must be leave or absence",
		http.StatusBadRequest,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"request not found",
		http.StatusNotFound,
	)
	ErrNotRequestOwner = apperror.New(
		apperror.CodeForbidden,
		"you may only act on your own requests",
		http.StatusForbidden,
	)
)

// ErrNotEditable names the conflicting current status, as callers need to
// show which terminal state blocked the edit.
func ErrNotEditable(status string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidState,
		fmt.Sprintf("request in status %s cannot be edited", status),
		http.StatusConflict,
	)
}

// ErrNotPending is returned when a decision or cancellation targets a
// request that already left the pending state.
func ErrNotPending(status string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidState,
		fmt.Sprintf("request is not pending, current status is %s", status),
		http.StatusConflict,
	)
}

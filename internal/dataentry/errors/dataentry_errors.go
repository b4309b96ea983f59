package dataentryerrors

import (
	"net/http"

	"halo-swapro/internal/shared/apperror"
)

var (
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Report entry not found",
		http.StatusNotFound,
	)
	ErrEntryClosed = apperror.New(
		apperror.CodeInvalidState,
		"Diskusi ini telah selesai dan ditutup.",
		http.StatusConflict,
	)
	ErrNotEntryOwner = apperror.New(
		apperror.CodeForbidden,
		"Entry belongs to another user",
		http.StatusForbidden,
	)
)

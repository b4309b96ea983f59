package clienterrors

import (
	"net/http"

	"halo-swapro/internal/shared/apperror"
)

var (
	ErrClientNotFound = apperror.New(
		apperror.CodeNotFound,
		"Client not found",
		http.StatusNotFound,
	)
	ErrClientAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Client with the same ID already exists",
		http.StatusConflict,
	)
	ErrClientHasEmployees = apperror.New(
		apperror.CodeInvalidState,
		"Client cannot be deleted while employees are still assigned",
		http.StatusConflict,
	)
)

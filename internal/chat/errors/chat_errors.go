package chaterrors

import (
	"net/http"

	"halo-swapro/internal/shared/apperror"
)

var (
	ErrUnknownCounterpart = apperror.New(
		apperror.CodeNotFound,
		"Chat counterpart not found",
		http.StatusNotFound,
	)
)

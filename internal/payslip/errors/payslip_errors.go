package paysliperrors

import (
	"net/http"

	"halo-swapro/internal/shared/apperror"
)

var (
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payslip not found",
		http.StatusNotFound,
	)
	ErrInvalidBatchHeader = apperror.New(
		apperror.CodeInvalidInput,
		"Format file Excel tidak sesuai. Pastikan nama kolom sama dengan template.",
		http.StatusBadRequest,
	)
	ErrInvalidBatchFile = apperror.New(
		apperror.CodeInvalidInput,
		"The XLSX file could not be parsed",
		http.StatusBadRequest,
	)
)

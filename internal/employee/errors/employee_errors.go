package employeeerrors

import (
	"net/http"

	"halo-swapro/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same NIK already exists",
		http.StatusConflict,
	)
	ErrInvalidImportHeader = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid CSV header, use the provided template",
		http.StatusBadRequest,
	)
	ErrInvalidImportFile = apperror.New(
		apperror.CodeInvalidInput,
		"The CSV file could not be parsed",
		http.StatusBadRequest,
	)
	ErrUnknownFileKind = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown attachment kind",
		http.StatusBadRequest,
	)
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"Missing required fields",
		http.StatusBadRequest,
	)
)

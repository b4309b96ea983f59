package searcherrors

import (
	"net/http"

	"halo-swapro/internal/shared/apperror"
)

var ErrProfileNotFound = apperror.New(
	apperror.CodeNotFound,
	"Karyawan dengan NIK tersebut tidak ditemukan",
	http.StatusNotFound,
)

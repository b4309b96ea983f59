package search

import (
	"net/http"
	"strings"

	"halo-swapro/internal/shared/apperror"
	"halo-swapro/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("search.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("search.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Lookup(c *gin.Context) {
	nik := strings.TrimSpace(c.Param("nik"))
	if nik == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "NIK wajib diisi", nil)
		return
	}

	profile, err := h.service.LookupByNIK(c.Request.Context(), nik)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("public lookup failed",
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, profile, nil)
}

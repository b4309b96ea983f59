package dataentry

import (
	"net/http"

	dataentryerrors "halo-swapro/internal/dataentry/errors"
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
	l := zap.L().Named("dataentry.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dataentry.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("data entry request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func isSupervisor(c *gin.Context) bool {
	role := c.GetString("user_role")
	return role == "PIC" || role == "ADMIN"
}

func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context(), c.GetString("user_id"), isSupervisor(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create entry validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

// UpdateStatus hanya untuk PIC; status tiket digerakkan dari sisi admin
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update entry status validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetChat(c *gin.Context) {
	if err := h.authorizeEntryAccess(c); err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetEntryChat(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SendMessage(c *gin.Context) {
	if err := h.authorizeEntryAccess(c); err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req SendEntryMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http send entry message validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.SendEntryMessage(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// authorizeEntryAccess membatasi diskusi tiket ke pemiliknya; PIC bebas
func (h *Handler) authorizeEntryAccess(c *gin.Context) error {
	if isSupervisor(c) {
		return nil
	}

	entry, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if entry.UserID != c.GetString("user_id") {
		return dataentryerrors.ErrNotEntryOwner
	}
	return nil
}

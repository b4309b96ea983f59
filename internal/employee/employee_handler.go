package employee

import (
	"io"
	"net/http"
	"strconv"

	"halo-swapro/internal/shared/apperror"
	"halo-swapro/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxImportSize = 8 << 20 // 8 MiB

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	resp, err := h.service.GetAll(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp = filterEmployees(resp, c.Query("client_id"), c.Query("q"))
	sortByName(resp)
	if c.DefaultQuery("sort_dir", "asc") == "desc" {
		for i, j := 0, len(resp)-1; i < j; i, j = i+1, j-1 {
			resp[i], resp[j] = resp[j], resp[i]
		}
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "8"))
	if pageSize < 1 {
		pageSize = 8
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update employee validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

// Template mengirim baris header CSV untuk diisi user
func (h *Handler) Template(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="template_karyawan.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(TemplateCSV()))
}

// Import menerima file CSV (multipart "file" atau body mentah text/csv)
func (h *Handler) Import(c *gin.Context) {
	var text string

	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, maxImportSize))
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		text = string(data)
	} else {
		data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize))
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		text = string(data)
	}

	result, err := h.service.BulkImport(c.Request.Context(), text)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) Export(c *gin.Context) {
	csvText, err := h.service.ExportCSV(c.Request.Context(), c.Query("client_id"), c.Query("q"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="karyawan_export.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvText))
}

// AttachFile menerima unggahan foto profil / dokumen PKWT / surat SP
func (h *Handler) AttachFile(c *gin.Context) {
	id := c.Param("id")
	kind := c.PostForm("kind")

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "File tidak ditemukan", err.Error())
		return
	}

	f, err := file.Open()
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImportSize))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.AttachFile(c.Request.Context(), id, kind, file.Filename, data)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

package payslip

import (
	"halo-swapro/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware())
	payslips.Use(middleware.ContextLogger(logger))
	payslips.Use(middleware.RequireRole("PIC", "ADMIN"))
	{
		payslips.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.List,
		)

		payslips.GET("/template", handler.Template)

		// Unggahan batch dilindungi idempotency lock seperti impor karyawan
		payslips.POST("/upload",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Idempotency(rdb),
			handler.Upload,
		)

		payslips.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			handler.Delete,
		)
	}
}

package search

import (
	"halo-swapro/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes memasang endpoint publik tanpa autentikasi; hanya
// dibatasi rate per IP.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	public := r.Group("/public")
	public.Use(middleware.ContextLogger(logger))
	{
		public.GET("/search/:nik",
			middleware.RateLimitByIP(1, 5),
			handler.Lookup,
		)
	}
}

package dataentry

import (
	"halo-swapro/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	entries := r.Group("/entries")
	entries.Use(middleware.AuthMiddleware())
	entries.Use(middleware.ContextLogger(logger))
	{
		entries.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.List,
		)

		entries.POST("",
			middleware.RateLimitByUser(0.5, 2),
			handler.Create,
		)

		entries.PUT("/:id/status",
			middleware.RequireRole("PIC", "ADMIN"),
			middleware.RateLimitByUser(0.5, 2),
			handler.UpdateStatus,
		)

		entries.GET("/:id/chat",
			middleware.RateLimitByUser(3, 10),
			handler.GetChat,
		)

		entries.POST("/:id/messages",
			middleware.RateLimitByUser(1, 3),
			handler.SendMessage,
		)
	}
}

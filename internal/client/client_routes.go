package client

import (
	"halo-swapro/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	clients := r.Group("/clients")
	clients.Use(middleware.AuthMiddleware())
	clients.Use(middleware.ContextLogger(logger))
	clients.Use(middleware.RequireRole("PIC", "ADMIN"))
	{
		clients.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.GetAll,
		)

		clients.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetById,
		)

		clients.POST("",
			middleware.RateLimitByUser(0.5, 2),
			handler.Create,
		)

		clients.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)

		clients.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			handler.Delete,
		)
	}
}

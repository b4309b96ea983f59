package chat

import (
	"halo-swapro/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	chats := r.Group("/chats")
	chats.Use(middleware.AuthMiddleware())
	chats.Use(middleware.ContextLogger(logger))
	chats.Use(middleware.RequireRole("PIC", "ADMIN"))
	{
		chats.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.ListChats,
		)

		chats.GET("/:employeeId",
			middleware.RateLimitByUser(3, 10),
			handler.GetChat,
		)

		chats.POST("/:employeeId/messages",
			middleware.RateLimitByUser(1, 3),
			handler.SendMessage,
		)
	}
}

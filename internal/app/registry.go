package app

import (
	"context"
	"os"

	"halo-swapro/internal/auth"
	"halo-swapro/internal/chat"
	"halo-swapro/internal/client"
	"halo-swapro/internal/dataentry"
	"halo-swapro/internal/employee"
	"halo-swapro/internal/genai"
	"halo-swapro/internal/messaging/kafka"
	"halo-swapro/internal/payslip"
	"halo-swapro/internal/search"
	"halo-swapro/internal/shared/counter"
	"halo-swapro/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Blob store: disk lokal dilayani lewat route statis /files ---
	storageRoot := os.Getenv("STORAGE_ROOT")
	if storageRoot == "" {
		storageRoot = "storage"
	}
	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + port()
	}
	blobStore := storage.NewDiskStore(storageRoot, baseURL+"/files")
	router.Static("/files", blobStore.Root())

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	clientRepo := client.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	dataEntryRepo := dataentry.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	payslipRepo := payslip.NewRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(authRepo, logger)
	employeeService := employee.NewServiceWithOutbox(gormDB, employeeRepo, outboxRepo, blobStore, rdb, logger)
	clientService := client.NewService(clientRepo, employeeService, logger)
	payslipService := payslip.NewServiceWithOutbox(gormDB, payslipRepo, outboxRepo, blobStore, employeeService, clientService, logger)
	replyGenerator := genai.NewGeminiClient(os.Getenv("GEMINI_API_KEY"), logger)
	chatService := chat.NewService(employeeService, replyGenerator, logger)
	dataEntryService := dataentry.NewService(dataEntryRepo, counterRepo, logger)
	searchService := search.NewService(employeeService, clientService, payslipService, rdb, logger)

	// Akun PIC bawaan harus ada sebelum server menerima login
	if err := authService.SeedDefaultPIC(context.Background()); err != nil {
		return err
	}

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	chatHandler := chat.NewHandler(chatService, logger)
	clientHandler := client.NewHandler(clientService, logger)
	dataEntryHandler := dataentry.NewHandler(dataEntryService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	payslipHandler := payslip.NewHandler(payslipService, logger)
	searchHandler := search.NewHandler(searchService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		chat.RegisterRoutes(api, chatHandler, logger)
		client.RegisterRoutes(api, clientHandler, logger)
		dataentry.RegisterRoutes(api, dataEntryHandler, logger)
		employee.RegisterRoutes(api, employeeHandler, rdb, logger)
		payslip.RegisterRoutes(api, payslipHandler, rdb, logger)
		search.RegisterRoutes(api, searchHandler, logger)
	}

	return nil
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "3000"
}

package app

import (
	"os"

	"halo-swapro/internal/auth"
	"halo-swapro/internal/client"
	"halo-swapro/internal/dataentry"
	"halo-swapro/internal/employee"
	"halo-swapro/internal/messaging/kafka"
	"halo-swapro/internal/payslip"
	"halo-swapro/internal/shared/connection"
	"halo-swapro/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if err := gormDB.AutoMigrate(
		&employee.Employee{},
		&client.Client{},
		&payslip.Payslip{},
		&dataentry.DataEntry{},
		&auth.User{},
		&counter.Counter{},
		&kafka.OutboxEvent{},
	); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	return registerModules(router, gormDB, redisClient, logger)
}

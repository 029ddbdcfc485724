package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/Ezra12363/Conge-sub001/internal/balance"
	"github.com/Ezra12363/Conge-sub001/internal/employee"
	"github.com/Ezra12363/Conge-sub001/internal/request"
	"github.com/Ezra12363/Conge-sub001/internal/shared/connection"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	var (
		employeeID = flag.String("employee", "", "recalculate a single employee by id; empty means every employee")
		year       = flag.Int("year", time.Now().UTC().Year(), "balance year to rebuild")
	)
	flag.Parse()

	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

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
		logger.Fatal("connect database failed", zap.Error(err))
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("unwrap sql db failed", zap.Error(err))
	}
	defer sqlDB.Close()

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 1)
	if err != nil {
		logger.Warn("redis unavailable, cache invalidation skipped", zap.Error(err))
		redisClient = nil
	}

	balanceRepo := balance.NewRepository(gormDB, sqlDB)
	employeeRepo := employee.NewRepository(gormDB, sqlDB)
	requestRepo := request.NewRepository(gormDB, sqlDB)

	recalculator := balance.NewRecalculator(balanceRepo, employeeRepo, requestRepo, redisClient, logger)

	ctx := context.Background()
	if *employeeID != "" {
		if _, err := recalculator.Recalculate(ctx, *employeeID, *year); err != nil {
			logger.Fatal("recalculate failed",
				zap.String("employee_id", *employeeID),
				zap.Int("year", *year),
				zap.Error(err),
			)
		}
		return
	}

	if err := recalculator.RecalculateAll(ctx, *year); err != nil {
		logger.Fatal("recalculate all failed", zap.Int("year", *year), zap.Error(err))
	}
}

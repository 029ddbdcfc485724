package app

import (
	"database/sql"

	"github.com/Ezra12363/Conge-sub001/internal/auth"
	"github.com/Ezra12363/Conge-sub001/internal/balance"
	"github.com/Ezra12363/Conge-sub001/internal/employee"
	"github.com/Ezra12363/Conge-sub001/internal/history"
	"github.com/Ezra12363/Conge-sub001/internal/messaging/kafka"
	"github.com/Ezra12363/Conge-sub001/internal/rbac"
	"github.com/Ezra12363/Conge-sub001/internal/rbac/infra"
	"github.com/Ezra12363/Conge-sub001/internal/request"
	"github.com/Ezra12363/Conge-sub001/internal/shared/counter"
	"github.com/Ezra12363/Conge-sub001/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	balanceRepo := balance.NewRepository(gormDB, db)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB, db)
	historyRepo := history.NewRepository(gormDB, db)
	outboxRepo := kafka.NewOutboxRepository(db)
	requestRepo := request.NewRepository(gormDB, db)
	validationRepo := validation.NewRepository(gormDB, db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	authService := auth.NewService(authRepo, employeeRepo)
	balanceService := balance.NewService(balanceRepo, rdb)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	historyService := history.NewService(historyRepo)
	requestService := request.NewService(db, requestRepo, balanceRepo, employeeRepo, historyRepo, rdb)
	validationService := validation.NewService(db, requestRepo, balanceRepo, validationRepo, historyRepo, employeeRepo, outboxRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	balanceHandler := balance.NewHandler(balanceService)
	employeeHandler := employee.NewHandler(employeeService)
	historyHandler := history.NewHandler(historyService)
	requestHandler := request.NewHandler(requestService)
	validationHandler := validation.NewHandler(validationService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, rbacService)
		balance.RegisterRoutes(api, balanceHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		history.RegisterRoutes(api, historyHandler, rbacService)
		request.RegisterRoutes(api, requestHandler, rbacService)
		validation.RegisterRoutes(api, validationHandler, rbacService)
	}

	return nil
}

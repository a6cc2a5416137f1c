package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"safe-rescue.backend/internal/config"
	"safe-rescue.backend/internal/infrastructure/jobs"
	"safe-rescue.backend/internal/infrastructure/repositories"
	"safe-rescue.backend/internal/interfaces/http/handlers"
	"safe-rescue.backend/internal/interfaces/http/middleware"
	"safe-rescue.backend/internal/usecases"
	"safe-rescue.backend/pkg/logger"
	"safe-rescue.backend/pkg/redis"
)

// seams for tests
var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	defer logger.Sync()
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		logger.Warn(context.Background(), "Database not available, endpoints will return errors", zap.Error(err))
	} else {
		logger.Info(context.Background(), "Connected to PostgreSQL")
	}

	// Repositories
	teamRepo := repositories.NewTeamRepository(db)
	shiftRepo := repositories.NewShiftRepository(db)
	companyRepo := repositories.NewCompanyRepository(db)
	locationRepo := repositories.NewLocationRepository(db)
	teamTypeRepo := repositories.NewTeamTypeRepository(db)
	firefighterRepo := repositories.NewFirefighterRepository(db)
	vehicleRepo := repositories.NewVehicleRepository(db)
	resourceRepo := repositories.NewResourceRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Usecases
	resolver := usecases.NewResolver(shiftRepo, companyRepo, teamTypeRepo, firefighterRepo, vehicleRepo, resourceRepo)
	shiftUsecase := usecases.NewShiftUsecase(shiftRepo)
	companyUsecase := usecases.NewCompanyUsecase(companyRepo, locationRepo)
	teamTypeUsecase := usecases.NewTeamTypeUsecase(teamTypeRepo)
	teamUsecase := usecases.NewTeamUsecase(teamRepo, shiftUsecase, companyUsecase, teamTypeUsecase, resolver, uow)
	assignmentUsecase := usecases.NewAssignmentUsecase(teamRepo, resolver, uow)

	// Handlers
	teamHandler := handlers.NewTeamHandler(teamUsecase, assignmentUsecase)
	shiftHandler := handlers.NewShiftHandler(shiftUsecase)
	companyHandler := handlers.NewCompanyHandler(companyUsecase)
	teamTypeHandler := handlers.NewTeamTypeHandler(teamTypeUsecase)

	// Background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewShiftExpiryJob(teamRepo, cfg.Jobs.ShiftExpiryInterval, cfg.Jobs.ShiftExpiryBatchSize)
	go expiryJob.Start(ctx)

	// Router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		teamHandler:     teamHandler,
		shiftHandler:    shiftHandler,
		companyHandler:  companyHandler,
		teamTypeHandler: teamTypeHandler,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info(context.Background(), "Shutting down server")
		expiryJob.Stop()
		cancel()
	}()

	logger.Info(context.Background(), "SAFE-Rescue backend starting", zap.String("port", cfg.Server.Port))

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

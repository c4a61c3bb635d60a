package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httpadp "microloans-api/internal/adapter/http"
	"microloans-api/internal/adapter/middleware"
	"microloans-api/internal/adapter/repository/mysql"
	"microloans-api/internal/config"
	loandomain "microloans-api/internal/domain/loan"
	"microloans-api/internal/infrastructure/cache"
	"microloans-api/internal/infrastructure/db"
	"microloans-api/internal/logging"
	"microloans-api/internal/metrics"
	healthuc "microloans-api/internal/usecase/health"
	loanuc "microloans-api/internal/usecase/loan"
	statsuc "microloans-api/internal/usecase/stats"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	logger.Info("log level set", zap.String("level", cfg.LogLevel))

	gdb, err := db.OpenGorm(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	if err := gdb.AutoMigrate(&loandomain.Loan{}); err != nil {
		logger.Fatal("migrate loans table", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	sink := metrics.NewPrometheus(reg)

	repo := mysql.NewLoanRepository(gdb)
	loans := loanuc.NewUsecase(repo, sink, logger)
	stats := statsuc.NewUsecase(repo)
	health := healthuc.NewUsecase(db.NewProber(gdb))

	loanHandler := httpadp.NewLoanHandler(loans)
	statsHandler := httpadp.NewStatsHandler(stats)
	healthHandler := httpadp.NewHealthHandler(health)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := e.Group("/api")
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			logger.Warn("redis unreachable, idempotency disabled", zap.Error(err))
		} else {
			api.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
		}
	}
	api.GET("/loans", loanHandler.ListLoans)
	api.POST("/loans", loanHandler.CreateLoan)
	api.GET("/loans/:id", loanHandler.GetLoan)
	api.GET("/stats", statsHandler.GetStats)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

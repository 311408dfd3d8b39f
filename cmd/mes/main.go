package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lks7470-gif/bt-admin/internal/config"
	"github.com/lks7470-gif/bt-admin/internal/mes/entity"
	"github.com/lks7470-gif/bt-admin/internal/mes/handler"
	"github.com/lks7470-gif/bt-admin/internal/mes/repository"
	"github.com/lks7470-gif/bt-admin/internal/mes/service"
	"github.com/lks7470-gif/bt-admin/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// .env 로드
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 로거 초기화
	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting bt-admin MES service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	// DB 초기화
	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&entity.WorkOrder{},
		&entity.ProductionLog{},
		&entity.DefectRecord{},
		&entity.FabricRoll{},
	); err != nil {
		zapLogger.Warn("AutoMigrate warning", zap.Error(err))
	}

	// 스캔 검증 인덱스: 공정 이력은 LOT 별 최신 조회가 대부분
	db.Exec("CREATE INDEX IF NOT EXISTS idx_production_logs_lot_created ON production_logs(lot_no, created_at DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_defects_lot_no ON defects(lot_no)")

	zapLogger.Info("Database migration completed")

	// Redis 초기화
	rdb := initRedis(cfg.Redis)

	// 의존성 조립
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, rdb, cfg, zapLogger)
	handlers := handler.NewHandlers(services)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, handlers, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	// 헬스 체크
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 버전 정보
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	// Prometheus 메트릭
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1
	v1 := r.Group("/api/v1")
	{
		// 인증 (로그인은 공개)
		v1.POST("/auth/login", h.Auth.Login)

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			// QR 스캔 공정 기록 (작업자)
			scan := authorized.Group("/scan")
			scan.Use(middleware.RequireRole("worker"))
			{
				scan.POST("", h.Tracking.Scan)
				scan.GET("/steps", h.Tracking.Steps)
			}

			// 불량 신고 (작업자)
			defects := authorized.Group("/defects")
			{
				defects.GET("/types", h.Defect.Types)
				defects.POST("", middleware.RequireRole("worker"), h.Defect.Report)
			}

			// 모니터링 전광판 (모든 역할 조회 가능)
			authorized.GET("/dashboard", h.Dashboard.Snapshot)

			// 작업 지시서 (관리자)
			orders := authorized.Group("/orders")
			orders.Use(middleware.RequireRole("admin"))
			{
				orders.POST("/publish", h.Order.Publish)
				orders.GET("", h.Order.List)
				orders.GET("/export", h.Order.Export)
				orders.GET("/:lotNo", h.Order.Get)
				orders.DELETE("/:lotNo", h.Order.Delete)
			}

			// 원단 재고 (관리자)
			fabric := authorized.Group("/fabric")
			fabric.Use(middleware.RequireRole("admin"))
			{
				fabric.POST("", h.Fabric.Register)
				fabric.GET("", h.Fabric.List)
				fabric.GET("/:lotNo", h.Fabric.Get)
			}
		}
	}
}

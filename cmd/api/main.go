package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/damoang/angple-moderation/internal/config"
	"github.com/damoang/angple-moderation/internal/handler"
	"github.com/damoang/angple-moderation/internal/middleware"
	"github.com/damoang/angple-moderation/internal/migration"
	"github.com/damoang/angple-moderation/internal/repository"
	"github.com/damoang/angple-moderation/internal/routes"
	"github.com/damoang/angple-moderation/internal/service"
	pkgcache "github.com/damoang/angple-moderation/pkg/cache"
	"github.com/damoang/angple-moderation/pkg/jwt"
	pkglogger "github.com/damoang/angple-moderation/pkg/logger"
	pkgredis "github.com/damoang/angple-moderation/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// @title           Angple Moderation API
// @version         1.0
// @description     Moderation and content-integrity service for Angple boards
//
// @license.name    MIT
//
// @host            localhost:8083
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// MySQL 연결 (모든 조치가 DB 트랜잭션이므로 없으면 기동 불가)
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis 연결 (없어도 기동: 캐시 미스, 조회수는 세션 중복 허용)
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Warn("Failed to connect to Redis: %v (continuing without Redis)", err)
		redisClient = nil
	} else {
		pkglogger.Info("Connected to Redis")
	}

	cacheCapability := pkgcache.New(redisClient, "moderation:", cfg.Cache.AccountStatusTTL)
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	// Repositories
	auditRepo := repository.NewAuditRepository(db)
	contentRepo := repository.NewContentRepository(db, auditRepo)
	recommendRepo := repository.NewRecommendRepository(db)
	reportRepo := repository.NewReportRepository(db)
	penaltyRepo := repository.NewPenaltyRepository(db)

	// Services
	lifecycleService := service.NewLifecycleService(contentRepo, auditRepo)
	recommendService := service.NewRecommendService(recommendRepo, contentRepo)
	reportService := service.NewReportService(reportRepo, penaltyRepo, cacheCapability)

	// Handlers
	lifecycleHandler := handler.NewLifecycleHandler(lifecycleService, redisClient, cfg.Cache.ViewedTTL)
	recommendHandler := handler.NewRecommendHandler(recommendService)
	reportHandler := handler.NewReportHandler(reportService)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	allowOrigins := cfg.CORS.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(allowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "X-Session-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           86400,
	}))

	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "angple-moderation",
			"time":    time.Now().Unix(),
		})
	})

	routes.Setup(router, lifecycleHandler, recommendHandler, reportHandler, jwtManager)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	pkglogger.Info("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initDB MySQL 연결 초기화
func initDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.IsDevelopment() {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
		// unique key 위반을 gorm.ErrDuplicatedKey로 변환 (추천 중복 감지)
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/udecupos/udecupos-api/internal/handler"
	"github.com/udecupos/udecupos-api/internal/middleware"
	"github.com/udecupos/udecupos-api/internal/portal"
	"github.com/udecupos/udecupos-api/internal/repository"
	"github.com/udecupos/udecupos-api/internal/service"
	"github.com/udecupos/udecupos-api/pkg/cache"
	"github.com/udecupos/udecupos-api/pkg/config"
	"github.com/udecupos/udecupos-api/pkg/logger"
	corsmiddleware "github.com/udecupos/udecupos-api/pkg/middleware/cors"
	reqidmiddleware "github.com/udecupos/udecupos-api/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()

	// Redis is preferred; when it is unreachable the process falls back to an
	// in-memory cache so the portal still isn't hit on every request.
	var cacheRepo service.CacheRepository
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, using in-memory cache", zap.Error(err))
		cacheRepo = repository.NewMemoryCache()
	} else {
		cacheRepo = repository.NewCacheRepository(redisClient, logr)
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cfg.Cache.Enabled)

	portalClient := portal.NewClient(cfg.Portal)
	catalogSvc := service.NewCatalogService(portalClient, cacheSvc, metricsSvc, cfg.Portal.ScriptInit, logr)
	sectionSvc := service.NewSectionService(portalClient, cacheSvc, metricsSvc, logr)
	timetableSvc := service.NewTimetableService(sectionSvc, cfg.Timetable, logr)
	exportSvc := service.NewExportService(timetableSvc, metricsSvc, logr)

	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	sectionHandler := handler.NewSectionHandler(sectionSvc)
	timetableHandler := handler.NewTimetableHandler(timetableSvc, exportSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if cfg.Metrics.Enabled {
		r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/periodos", catalogHandler.Periods)
		api.GET("/programas", catalogHandler.Programs)
		api.GET("/materias", catalogHandler.Subjects)
		api.GET("/modalidades", catalogHandler.Modalities)
		api.GET("/grupos", sectionHandler.List)
		api.POST("/horario", timetableHandler.Build)
		api.POST("/horario/export", timetableHandler.Export)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

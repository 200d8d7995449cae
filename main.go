package main

import (
	"flag"
	"fmt"
	"os"

	"filedrive/config"
	"filedrive/database"
	"filedrive/handlers"
	"filedrive/logger"
	"filedrive/middleware"
	"filedrive/models"
	"filedrive/repositories"
	"filedrive/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// .env is optional; it feeds the FILEDRIVE_* overrides read during
	// config parsing.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Log.Level)
	logger.Infof("starting filedrive")

	var svc *services.Container
	var authGate gin.HandlerFunc

	if cfg.Database.Configured() {
		db, err := database.Open(&cfg.Database)
		if err != nil {
			logger.Errorf("init database: %v", err)
			os.Exit(1)
		}
		if err := db.AutoMigrate(&models.User{}, &models.Folder{}, &models.File{}); err != nil {
			logger.Errorf("migrate database: %v", err)
			os.Exit(1)
		}

		if err := os.MkdirAll(cfg.Storage.BasePath, 0o755); err != nil {
			logger.Errorf("create storage dir: %v", err)
			os.Exit(1)
		}

		rdb := database.NewRedis(&cfg.Redis)

		repos := repositories.NewGormRepositories(db, rdb).BuildContainer()
		svc = services.NewContainer(repos, cfg)
		authGate = middleware.Auth(repos.Users, repos.Tokens, cfg.JWT.Secret)
	} else {
		logger.Warnf("no database driver configured, serving in degraded mode")
		authGate = middleware.Unavailable()
	}

	h := handlers.New(svc, cfg.Database.Configured())

	if !logger.IsDebugEnabled() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	handlers.RegisterRoutes(r, h, authGate)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("server listening on http://%s", addr)
	if err := r.Run(addr); err != nil {
		logger.Errorf("server start failed: %v", err)
		os.Exit(1)
	}
}

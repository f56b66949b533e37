package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"climate-registry/internal/api/router"
	"climate-registry/internal/pkg/config"
	"climate-registry/internal/pkg/database"
	"climate-registry/internal/pkg/logger"
	"climate-registry/internal/scheduler"

	_ "climate-registry/docs" // Swagger docs
)

// @title Climate Project Registry API
// @version 1.0
// @description National registry of climate change adaptation and mitigation projects.
// @description Provides public browse/submit endpoints and administrator review workflows.

// @contact.name API Support
// @contact.email support@example.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

var (
	configFile = flag.String("config", "", "config file path (e.g. -config=configs/config.yaml)")
	version    = flag.Bool("version", false, "print version and exit")
)

const (
	appVersion = "1.0.0"
	appName    = "climate-registry"
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("%s version %s\n", appName, appVersion)
		os.Exit(0)
	}

	// init config and logger
	var cfg *config.Config
	{
		// precedence: command line flag > environment variable > default path
		configPath := getConfigPath()

		c, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("load config failed: %v\n", err)
			fmt.Println("\nusage:")
			fmt.Println("  1. command line flag:")
			fmt.Println("     ./climate-registry -config=configs/config.yaml")
			fmt.Println("  2. environment variable:")
			fmt.Println("     export CONFIG_FILE=configs/config.yaml")
			fmt.Println("     ./climate-registry")
			fmt.Println("  3. default path:")
			fmt.Println("     ./climate-registry  (uses configs/config.yaml)")
			os.Exit(1)
		}
		cfg = c

		if err := logger.Init(&cfg.Log); err != nil {
			fmt.Printf("init logger failed: %v\n", err)
			os.Exit(1)
		}
		logger.Info(fmt.Sprintf("Load config file: %s", configPath))

		defer func() {
			_ = logger.Close()
		}()
	}

	logger.Info(fmt.Sprintf("service %s starting...", appName), zap.String("version", appVersion))

	db, err := database.Open(&cfg.Database)
	if err != nil {
		logger.Fatal("open database failed", zap.Error(err))
	}
	defer func() {
		_ = database.Close(db)
	}()

	logger.Info(fmt.Sprintf("database connected %s:%v", cfg.Database.Host, cfg.Database.Port), zap.String("database", cfg.Database.Database))

	if err := database.Migrate(db); err != nil {
		logger.Fatal("migrate database failed", zap.Error(err))
	}

	taskScheduler := scheduler.NewScheduler(db, logger.Log, cfg)
	if err := taskScheduler.Start(cfg); err != nil {
		logger.Warn("scheduler start failed", zap.Error(err))
	}

	r := router.Setup(db, cfg, logger.Log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logger.Info(fmt.Sprintf("%s listening", cfg.Server.Name),
			zap.String("address", addr),
			zap.String("mode", cfg.Server.Mode),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server start failed", zap.Error(err))
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("service shutting down...")

	taskScheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("service stopped")
}

// getConfigPath resolves the config file path.
// precedence: command line flag > environment variable > default path
func getConfigPath() string {
	if *configFile != "" {
		return *configFile
	}

	if envConfig := os.Getenv("CONFIG_FILE"); envConfig != "" {
		return envConfig
	}

	return "configs/config.yaml"
}

package main

import (
	"os"
	"path/filepath"
	"time"

	"go-salarydash/internal/app"
	"go-salarydash/internal/bootstrap"
	"go-salarydash/internal/middleware"
	"go-salarydash/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ContextLogger(logger))

	cfg := app.Config{
		DatasetPath: envOr("DATASET_PATH", filepath.Join("data", "dados_salarios_limpos.csv")),
		MapJobTitle: envOr("MAP_JOB_TITLE", "Data Scientist"),
	}

	// build dependency + routes
	if err := app.BuildApp(r, cfg); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	auditLogger := bootstrap.NewStdoutAuditLogger()
	port := envOr("PORT", "3000")
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		auditLogger,
	)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

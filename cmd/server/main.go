package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/SecondHemisphere/portal-actividades/config"
	"github.com/SecondHemisphere/portal-actividades/internal/api/handler"
	"github.com/SecondHemisphere/portal-actividades/internal/api/router"
	"github.com/SecondHemisphere/portal-actividades/internal/repository"
	"github.com/SecondHemisphere/portal-actividades/internal/service"
	"github.com/SecondHemisphere/portal-actividades/pkg/database"
	"github.com/SecondHemisphere/portal-actividades/pkg/jwt"
	applogger "github.com/SecondHemisphere/portal-actividades/pkg/logger"
	"github.com/SecondHemisphere/portal-actividades/pkg/redis"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.New(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "inicializar logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("iniciando el portal de actividades",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("conexión a la base de datos falló", zap.Error(err))
	}
	logger.Info("conexión a la base de datos establecida")

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("obtener sql.DB subyacente falló", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("migraciones fallaron", zap.Error(err))
	}

	// Redis is optional: without it logout revocation and rate limiting
	// degrade, but the portal keeps running.
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("conexión a Redis falló, la lista de revocación no estará disponible", zap.Error(err))
		rdb = nil
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)

	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("servidor HTTP iniciado", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("servidor HTTP falló", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("señal recibida, cerrando", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("cierre del servidor falló", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("servidor detenido")
}

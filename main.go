package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"agenda/config"
	"agenda/internal/notify"
	"agenda/internal/repository"
	"agenda/internal/service"
	"agenda/internal/transport/cli"
	"agenda/internal/transport/rest"
	"agenda/pkg/httpapi"
	"agenda/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		panic(err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.Mode == "server" {
		runServer(cfg, log)
		return
	}
	runClient(cfg, log)
}

// runClient starts the interactive booking client against the configured
// backend.
func runClient(cfg *config.Config, log *zap.Logger) {
	client := httpapi.NewClient(cfg.API, cfg.Session.Token)
	repos := repository.NewRepositories(client)

	services := service.NewServices(service.Deps{
		Repos:    repos,
		Logger:   log,
		Config:   cfg,
		Notifier: notify.NewTerminalNotifier(os.Stdout),
	})

	app := cli.NewApp(services, log, os.Stdin, os.Stdout, nil)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatal("Erro ao executar o aplicativo", zap.Error(err))
	}
}

// runServer starts the in-memory stand-in backend, for local development
// without the real API.
func runServer(cfg *config.Config, log *zap.Logger) {
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := rest.NewHandler(rest.NewStore(nil), log)

	router := gin.New()
	handler.InitRoutes(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Erro ao iniciar o servidor", zap.Error(err))
		}
	}()

	log.Info("Servidor iniciado", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Desligando o servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Erro ao parar o servidor", zap.Error(err))
	}

	log.Info("Servidor parado com sucesso")
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dtroode/sessionvault/internal/api/http/handler"
	"github.com/dtroode/sessionvault/internal/api/http/router"
	httpserver "github.com/dtroode/sessionvault/internal/api/http/server"
	"github.com/dtroode/sessionvault/internal/config"
	"github.com/dtroode/sessionvault/internal/crypto"
	"github.com/dtroode/sessionvault/internal/logger"
	"github.com/dtroode/sessionvault/internal/processor"
	redisrepo "github.com/dtroode/sessionvault/internal/repository/redis"
	"github.com/dtroode/sessionvault/internal/service"
	"github.com/dtroode/sessionvault/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	key, err := cfg.Crypto.Key()
	if err != nil {
		logger.Fatal("failed to load encryption key", "error", err)
	}
	codec, err := crypto.NewCodec(key)
	if err != nil {
		logger.Fatal("failed to initialize codec", "error", err)
	}

	store, err := redisrepo.NewConnection(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal("failed to initialize store", "error", err)
	}
	defer store.Close()

	accountRepo := redisrepo.NewAccountRepository(store, codec)
	sessionRepo := redisrepo.NewSessionRepository(store, codec)
	paymentRepo := redisrepo.NewPaymentRepository(store, codec)
	tokenManager := token.NewJWT(cfg.JWT.Secret)

	accountService := service.NewAccount(accountRepo, logger)
	sessionService := service.NewSession(sessionRepo, tokenManager, logger)
	paymentSimulator := processor.NewSimulator(time.Duration(cfg.Processor.Delay)*time.Millisecond, cfg.Processor.SuccessRate)
	paymentService := service.NewPayment(paymentRepo, paymentSimulator, logger)

	authHandler := handler.NewAuth(accountService, sessionService, tokenManager, cfg.Production(), logger)
	paymentHandler := handler.NewPayment(paymentService, logger)

	r := router.New(authHandler, paymentHandler, sessionService, store, logger)
	srv := httpserver.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting server on", "address", srv.Address())
		if err := srv.Start(); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

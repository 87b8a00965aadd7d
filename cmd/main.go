package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JMURv/authcore/internal/auth"
	"github.com/JMURv/authcore/internal/auth/jwt"
	"github.com/JMURv/authcore/internal/config"
	"github.com/JMURv/authcore/internal/ctrl"
	"github.com/JMURv/authcore/internal/deviceauth"
	"github.com/JMURv/authcore/internal/hdl/http"
	"github.com/JMURv/authcore/internal/oauth"
	"github.com/JMURv/authcore/internal/observability/metrics/prometheus"
	"github.com/JMURv/authcore/internal/observability/tracing/jaeger"
	"github.com/JMURv/authcore/internal/ratelimit"
	"github.com/JMURv/authcore/internal/repo/db"
	"github.com/JMURv/authcore/internal/smtp"
	"go.uber.org/zap"
)

const envPath = ".env"

func mustRegisterLogger(mode string) {
	switch mode {
	case "prod":
		zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	case "dev":
		zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	}
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			zap.L().Panic("panic occurred", zap.Any("error", err))
			os.Exit(1)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.MustLoad(envPath)
	mustRegisterLogger(conf.Server.Mode)

	go prometheus.New(conf.Server.Port + 5).Start(ctx)
	go jaeger.Start(ctx, conf.ServiceName, &conf.Jaeger)

	repo := db.New(conf)

	var attest *deviceauth.AttestationVerifier
	if conf.Attest.KeysFile != "" {
		keys, err := deviceauth.LoadKeySet(conf.Attest.KeysFile)
		if err != nil {
			zap.L().Fatal("failed to load attestation keys", zap.Error(err))
		}
		attest = deviceauth.NewAttestationVerifier(keys, conf.Attest.Lenient)
	} else {
		attest = deviceauth.NewAttestationVerifier(nil, conf.Attest.Lenient)
	}

	svc := ctrl.New(
		jwt.Must(conf),
		repo,
		auth.NewBcryptHasher(0),
		oauth.New(conf),
		attest,
		smtp.New(conf),
	)

	limiter := ratelimit.New(conf.Redis, config.RecoveryRateLimit, config.RecoveryRateWindow)
	h := http.New(svc, conf, limiter)

	zap.L().Info(
		fmt.Sprintf(
			"Starting server on %v://%v:%v",
			conf.Server.Scheme,
			conf.Server.Domain,
			conf.Server.Port,
		),
	)
	go h.Start(conf.Server.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	zap.L().Info("Shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := h.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing handler", zap.Error(err))
	}

	if err := limiter.Close(); err != nil {
		zap.L().Warn("Failed to close connection to Redis: ", zap.Error(err))
	}

	if err := repo.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}

	os.Exit(0)
}

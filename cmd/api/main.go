package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/config"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/database"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/health"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/logger"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/middleware"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/nsq"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/server"

	authhandler "github.com/Roastcoder/finonest-server-sub001/services/auth/handler"
	authhttp "github.com/Roastcoder/finonest-server-sub001/services/auth/handler/http"
	authgw "github.com/Roastcoder/finonest-server-sub001/services/auth/gateway"
	authrepo "github.com/Roastcoder/finonest-server-sub001/services/auth/repository"
	authuc "github.com/Roastcoder/finonest-server-sub001/services/auth/usecase"

	leadhandler "github.com/Roastcoder/finonest-server-sub001/services/leads/handler"
	leadhttp "github.com/Roastcoder/finonest-server-sub001/services/leads/handler/http"
	leadgw "github.com/Roastcoder/finonest-server-sub001/services/leads/gateway"
	leadrepo "github.com/Roastcoder/finonest-server-sub001/services/leads/repository"
	leaduc "github.com/Roastcoder/finonest-server-sub001/services/leads/usecase"
)

const serviceName = "finonest-api"

func main() {
	configPath := flag.String("config", "", "path to config file (optional, env vars take precedence)")
	flag.Parse()

	cfg, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()

	if cfg.JWT.Secret == config.DevFallbackSecret {
		logger.Warn("JWT_SECRET is unset; using the development fallback secret")
	}

	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to postgres", logger.ErrorField(err))
	}

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", logger.ErrorField(err))
	}

	producer, err := nsq.NewProducer(cfg.NSQ.Address)
	if err != nil {
		logger.Fatal("Failed to connect to nsqd", logger.ErrorField(err))
	}

	// Auth service wiring
	authRepository := authrepo.NewAuthRepo(cfg, pgClient.GetDB(), redisClient)
	authGateway := authgw.NewAuthGW(producer)
	authUsecase := authuc.NewAuthUC(authRepository, authGateway, cfg)

	authenticator := middleware.NewAuthenticator(cfg, authUsecase)

	// Leads service wiring
	leadRepository := leadrepo.NewLeadRepo(cfg, pgClient.GetDB())
	leadGateway := leadgw.NewLeadGW(producer)
	leadUsecase := leaduc.NewLeadUC(leadRepository, leadGateway, cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, serviceName)

	authHandler := authhandler.NewHandler(
		authhttp.NewAuthHandler(authUsecase),
		authenticator,
	)
	authHandler.RegisterRoutes(e)

	leadHandler := leadhandler.NewHandler(
		leadhttp.NewLeadHandler(leadUsecase),
		authenticator,
	)
	leadHandler.RegisterRoutes(e)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return pgClient.Close()
	})

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port,
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)

	if err := srv.Start(); err != nil {
		logger.Error("Server stopped with error", logger.ErrorField(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = shutdownManager.Shutdown(ctx)
}

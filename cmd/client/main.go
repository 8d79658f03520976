// Package main runs the room-booking web client: a local HTTP server that
// renders the booking UI and talks to the reservation REST backend on the
// user's behalf.
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
	"go.uber.org/zap/zapcore"

	"github.com/meetspace/roomclient/config"
	"github.com/meetspace/roomclient/internal/booking"
	"github.com/meetspace/roomclient/internal/gateway"
	"github.com/meetspace/roomclient/internal/session"
	"github.com/meetspace/roomclient/internal/web"
	"github.com/meetspace/roomclient/pkg/redis"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	storage, err := newStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("session storage", zap.Error(err))
	}

	sessions := session.NewManager(storage, logger)
	gw := gateway.NewClient(cfg.Backend.BaseURL, time.Duration(cfg.Backend.TimeoutSec)*time.Second, sessions, logger)
	gw.SetUnauthorizedHook(sessions.Invalidate)

	authClient := booking.NewAuthClient(gw)
	sessions.SetAuthClient(authClient)

	roomClient := booking.NewRoomClient(gw)
	reservationClient := booking.NewReservationClient(gw)
	userClient := booking.NewUserClient(gw)
	notificationClient := booking.NewNotificationClient(gw)

	server := web.NewServer(sessions, roomClient, reservationClient, userClient, notificationClient, logger)

	// Rehydrate in the background; the route guard shows a waiting page
	// until this completes.
	go sessions.Initialize(ctx)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      server.Router(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("client listening",
			zap.String("port", cfg.Server.Port),
			zap.String("backend", cfg.Backend.BaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("client stopped")
}

func newStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (session.Storage, error) {
	switch cfg.Session.Backend {
	case "file":
		return session.NewFileStorage(cfg.Session.FilePath), nil
	case "redis":
		rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
		if err != nil {
			return nil, err
		}
		return session.NewRedisStorage(rdb.Client), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}

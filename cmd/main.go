package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CodeWander-666/GULLYLINK-AI/internal/app/registry"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/app/server"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/config"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/contracts"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/services"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/platform/logger"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/platform/telemetry"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/plugins/memstore"
	redisPlugin "github.com/CodeWander-666/GULLYLINK-AI/internal/plugins/redis"
)

func main() {
	// Context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Config
	cfg := config.Load()

	// Logger
	log := logger.NewLogger(*cfg)
	log.Info("starting application")

	otelShutdown, err := telemetry.InitTelemetry(ctx, *cfg)
	if err != nil {
		log.Error("failed to initialize telemetry", "err", err)
	}
	defer func() {
		log.Info("flushing telemetry...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			log.Error("telemetry shutdown failed", "err", err)
		}
	}()

	// Infra
	store := memstore.NewSeeded()
	var presence contracts.VendorPresence
	if cfg.Redis.URL != "" {
		rdb, err := redisPlugin.NewRedisClient(ctx, *cfg.Redis)
		if err != nil {
			log.Error("redis connection failed", "url", cfg.Redis.URL, "err", err)
			return
		}
		log.Info("redis connected")
		presence = redisPlugin.NewVendorPresence(rdb, cfg.Presence.Window)
	} else {
		log.Info("no redis configured, using in-memory presence")
		presence = memstore.NewPresence()
	}

	// Core Services
	hub := registry.NewRegistry(log)
	dispatchSvc := services.NewDispatchService(log, store, presence, hub, cfg.Presence.Window)
	orderSvc := services.NewOrderService(log, store, hub)
	catalogSvc := services.NewCatalogService(log, store, presence)

	// Server
	srv := server.NewServer(log, cfg.Service.Name, cfg.Service.Addr, catalogSvc, orderSvc, dispatchSvc, hub)
	if err := srv.Start(ctx); err != nil {
		log.Error("server stopped", "err", err)
	}
}

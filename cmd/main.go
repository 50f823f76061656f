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

	"github.com/redis/go-redis/v9"

	"github.com/mickey-panda/caffeine-club-online/internal/cache"
	"github.com/mickey-panda/caffeine-club-online/internal/cart"
	"github.com/mickey-panda/caffeine-club-online/internal/config"
	"github.com/mickey-panda/caffeine-club-online/internal/logger"
	"github.com/mickey-panda/caffeine-club-online/internal/messaging"
	"github.com/mickey-panda/caffeine-club-online/internal/server"
	"github.com/mickey-panda/caffeine-club-online/internal/services/cartsession"
	"github.com/mickey-panda/caffeine-club-online/internal/services/catalog"
	"github.com/mickey-panda/caffeine-club-online/internal/services/checkout"
	"github.com/mickey-panda/caffeine-club-online/internal/slots"
	"github.com/mickey-panda/caffeine-club-online/internal/storage"
)

func main() {
	var (
		mode       = flag.String("mode", "serve", "Run mode (serve, seed-menu)")
		configPath = flag.String("config", "config.yaml", "Path to config file")
		port       = flag.Int("port", 0, "HTTP port (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.HTTP.Port = *port
	}

	log := logger.New("caffeine-club-online")
	requestID := logger.GenerateRequestID()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("graceful_shutdown", requestID, "Received shutdown signal")
		cancel()
	}()

	switch *mode {
	case "serve":
		if err := runServer(ctx, cfg, log); err != nil {
			log.Error("service_failed", requestID, "Storefront service failed", err)
			os.Exit(1)
		}
	case "seed-menu":
		if err := runSeedMenu(ctx, cfg, log); err != nil {
			log.Error("seed_failed", requestID, "Menu seed failed", err)
			os.Exit(1)
		}
	default:
		log.Error("validation_failed", requestID, fmt.Sprintf("Unknown mode: %s", *mode), nil)
		os.Exit(1)
	}

	log.Info("service_stopped", requestID, "Service stopped gracefully")
}

// runServer runs the storefront API.
func runServer(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	requestID := logger.GenerateRequestID()

	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close(context.Background())
	log.Info("storage_connected", requestID, fmt.Sprintf("Connected to %s storage", cfg.Storage.Driver))

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Info("redis_connected", requestID, "Connected to Redis")

	var publisher *messaging.Publisher
	if cfg.RabbitMQ.Enabled {
		conn, err := messaging.New(cfg, log)
		if err != nil {
			return fmt.Errorf("failed to initialize messaging: %w", err)
		}
		defer conn.Close()
		publisher = messaging.NewPublisher(conn, log)
		log.Info("rabbitmq_connected", requestID, "Connected to RabbitMQ")
	}

	location, err := cfg.Shop.Location()
	if err != nil {
		return err
	}
	generator := slots.Generator{
		MinLead:         time.Duration(cfg.Shop.Slots.MinLeadHours) * time.Hour,
		Horizon:         time.Duration(cfg.Shop.Slots.HorizonHours) * time.Hour,
		WindowStartHour: cfg.Shop.Slots.WindowStartHour,
		WindowEndHour:   cfg.Shop.Slots.WindowEndHour,
		Step:            time.Duration(cfg.Shop.Slots.StepMinutes) * time.Minute,
		Location:        location,
	}
	promo := cart.PromoRules{
		Code:        cfg.Shop.Promo.Code,
		MinSubtotal: cfg.Shop.Promo.MinSubtotal,
		Discount:    cfg.Shop.Promo.Discount,
	}

	catalogCache := cache.NewRedisCatalogCache(redisClient, cfg.CatalogTTL())
	catalogSvc := catalog.NewService(store, catalogCache, log)

	cartStore := cartsession.NewRedisStore(redisClient, cfg.CartTTL(), log)
	cartSvc := cartsession.NewService(cartStore, catalogSvc, promo, log)

	var eventPublisher checkout.EventPublisher
	if publisher != nil {
		eventPublisher = publisher
	}
	checkoutSvc := checkout.NewService(cartStore, store, generator, promo,
		eventPublisher, cfg.Shop.WhatsAppPhone, cfg.Shop.Currency, log)

	api := server.New(catalogSvc, cartSvc, checkoutSvc, store, log)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: api.Router(),
	}

	go func() {
		log.Info("service_started", requestID,
			fmt.Sprintf("Storefront started on port %d", cfg.HTTP.Port), "port", cfg.HTTP.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server_failed", requestID, "HTTP server failed", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return httpServer.Shutdown(shutdownCtx)
}

// runSeedMenu uploads the built-in menu and exits.
func runSeedMenu(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	requestID := logger.GenerateRequestID()

	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close(context.Background())

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	defer redisClient.Close()

	catalogCache := cache.NewRedisCatalogCache(redisClient, cfg.CatalogTTL())
	catalogSvc := catalog.NewService(store, catalogCache, log)

	if err := catalogSvc.SeedMenu(ctx); err != nil {
		return err
	}
	log.Info("menu_seeded", requestID, fmt.Sprintf("Seeded %d menu items", len(catalog.DefaultMenu)))
	return nil
}

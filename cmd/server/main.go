package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	pb "github.com/rl1809/volunteer-checkin/api/gen/go/checkin/v1"
	"github.com/rl1809/volunteer-checkin/internal/adapter/handler"
	"github.com/rl1809/volunteer-checkin/internal/adapter/publisher"
	"github.com/rl1809/volunteer-checkin/internal/adapter/storage"
	"github.com/rl1809/volunteer-checkin/internal/core/service"
	"github.com/rl1809/volunteer-checkin/internal/platform/config"
	"github.com/rl1809/volunteer-checkin/internal/platform/logger"
	"github.com/rl1809/volunteer-checkin/internal/platform/metrics"
	"github.com/rl1809/volunteer-checkin/internal/platform/otel"
	"github.com/rl1809/volunteer-checkin/internal/port"
)

const serviceName = "volunteer-checkin"

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		// No logger yet
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		log.Fatal("failed to set up tracing", zap.Error(err))
	}

	// Initialize registry
	db, err := storage.Open(ctx, cfg.RegistryDriver, cfg.RegistryDSN)
	if err != nil {
		log.Fatal("failed to open registry", zap.String("driver", cfg.RegistryDriver), zap.Error(err))
	}
	if err := storage.Migrate(ctx, db); err != nil {
		log.Fatal("failed to migrate registry", zap.Error(err))
	}
	log.Info("connected to registry", zap.String("driver", cfg.RegistryDriver))
	registry := storage.NewSQLAdapter(db)

	// Initialize Redis lease, if configured
	var lease port.LeaseRepository = storage.LocalLease{}
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			PoolSize: 10,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal("failed to connect redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		lease = storage.NewRedisAdapter(rdb)
		log.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	}

	// Initialize event publisher
	var events port.EventPublisher = publisher.NewLogPublisher(log.Named("events"))
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := publisher.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Fatal("failed to create kafka publisher", zap.Error(err))
		}
		events = kafka
		log.Info("publishing check-in events to kafka",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.KafkaTopic))
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Initialize services
	aggregates := service.NewAggregateMaintainer(registry, registry, lease, log.Named("aggregates"), m, cfg.ReconcileWorkers)
	checkIn := service.NewCheckInService(registry, aggregates, log.Named("checkin"), m, service.CheckInConfig{
		WriteTimeout: cfg.WriteTimeout,
		QueueSize:    cfg.EventQueueSize,
	})
	query := service.NewSlotQueryService(registry)

	// Background workers outlive the servers so queued events are flushed.
	workerCtx, stopWorkers := context.WithCancel(context.WithoutCancel(ctx))
	var wg sync.WaitGroup
	for i := 0; i < cfg.EventWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			service.PublishLoop(workerCtx, id, checkIn.GetEventQueue(), events, log.Named("events"), m)
		}(i)
	}
	log.Info("started event workers", zap.Int("count", cfg.EventWorkers))

	wg.Add(1)
	go func() {
		defer wg.Done()
		aggregates.Run(workerCtx, cfg.ReconcileInterval)
	}()
	log.Info("started reconciler", zap.Duration("interval", cfg.ReconcileInterval))

	// Initialize gRPC server
	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	pb.RegisterCheckInServiceServer(grpcServer, handler.NewGRPCHandler(checkIn, query, log.Named("grpc")))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatal("failed to listen", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
	}

	go func() {
		log.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr))
		if err := grpcServer.Serve(lis); err != nil {
			log.Error("gRPC server error", zap.Error(err))
		}
	}()

	// Initialize HTTP server
	router := chi.NewRouter()
	router.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	handler.NewHTTPHandler(checkIn, query, aggregates, log.Named("http")).Register(router)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Error("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Stop HTTP server
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown", zap.Error(err))
	}
	log.Info("HTTP server stopped")

	// Stop gRPC server
	grpcServer.GracefulStop()
	log.Info("gRPC server stopped")

	// No new check-ins can arrive; flush events and stop the reconciler
	stopWorkers()
	wg.Wait()
	log.Info("workers stopped")

	// Close connections
	if err := events.Close(); err != nil {
		log.Warn("close publisher", zap.Error(err))
	}
	if rdb != nil {
		rdb.Close()
	}
	db.Close()
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("flush traces", zap.Error(err))
	}
	log.Info("connections closed")
}

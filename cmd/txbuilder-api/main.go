package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/utxo/service/txbuilder"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var config struct {
	Addr      string `long:"addr" env:"TXBUILDER_ADDR" description:"grpc addr" default:":8000"`
	RestAddr  string `long:"rest-addr" env:"TXBUILDER_REST_ADDR" description:"rest addr" default:":8001"`
	Network   string `long:"network" env:"TXBUILDER_NETWORK" description:"default network for addresses" default:"bitcoin"`
	RateLimit int    `long:"rate-limit" env:"TXBUILDER_RATE_LIMIT" description:"rest requests per second" default:"100"`
	Workers   int    `long:"workers" env:"TXBUILDER_WORKERS" description:"batch signing workers" default:"8"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}
	network := model.Network(config.Network)
	limiter, err := newRateLimiter(config.RateLimit)
	if err != nil {
		logger.Fatal("Invalid rate limit", zap.Error(err))
	}

	service, err := txbuilder.NewService(
		metrics.NewTxBuilder(network),
		network,
		config.Workers,
		logger.Named("txBuilder"),
	)
	if err != nil {
		logger.Fatal("Create tx builder service", zap.Error(err))
	}

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()

	healthServer := transport.NewHealthServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	httpMetrics := metrics.NewHTTPServer()
	gw := gwruntime.NewServeMux()
	handler := transport.NewRestHandler(service, healthServer, httpMetrics, logger.Named("rest"))
	if err := handler.Register(gw); err != nil {
		logger.Fatal("Register tx builder handler", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.Handle("/", transport.RateLimit(limiter, httpMetrics, gw))
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server",
		zap.String("addr", config.RestAddr),
		zap.String("network", config.Network),
	)
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}

// newRateLimiter rejects non-positive rates, which ratelimit.New cannot build.
func newRateLimiter(perSecond int) (ratelimit.Limiter, error) {
	if perSecond <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", perSecond)
	}
	return ratelimit.New(perSecond), nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/likearthian/galadriel/book"
	"github.com/likearthian/galadriel/internal/config"
	"github.com/likearthian/galadriel/internal/logging"
	"github.com/likearthian/galadriel/migrations"
	pb "github.com/likearthian/galadriel/proto/galadriel"
	"github.com/likearthian/galadriel/server"
	"github.com/likearthian/galadriel/store"
)

const banner = `
   ____       _           _      _      _
  / ___| __ _| | __ _  __| |_ __(_) ___| |
 | |  _ / _' | |/ _' |/ _' | '__| |/ _ \ |
 | |_| | (_| | | (_| | (_| | |  | |  __/ |
  \____|\__,_|_|\__,_|\__,_|_|  |_|\___|_|
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "galadriel:", err)
		os.Exit(1)
	}
}

func run() error {
	fmt.Fprint(os.Stderr, banner)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.ConnectPostgresql(ctx, store.PGConfig{
		URL:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.Run(ctx, db, logger); err != nil {
		return err
	}

	engine := store.NewEngine(db, store.WithLogger(logger))
	books := book.NewController(engine, book.WithLogger(logger))

	if cfg.GRPCAuthKey == "" {
		logger.Warn("GRPC_AUTH_KEY is empty, requests are not authenticated")
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		server.LoggingInterceptor(logger),
		server.AuthInterceptor(cfg.GRPCAuthKey, cfg.GRPCAuthValue),
	))
	pb.RegisterGaladrielServer(srv, server.NewService(books, server.WithLogger(logger)))

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.ListenAddr, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("grpc server started", "addr", lis.Addr().String())
		serveErr <- srv.Serve(lis)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdown(srv, cfg.ShutdownTimeout, logger)
	return nil
}

func shutdown(srv *grpc.Server, timeout time.Duration, logger *slog.Logger) {
	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		logger.Info("server stopped gracefully")
	case <-timer.C:
		logger.Warn("server forced to shutdown")
		srv.Stop()
	}
}

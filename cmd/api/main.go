package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Caiismith/videogame-api/internal/allowlist"
	"github.com/Caiismith/videogame-api/internal/api"
	"github.com/Caiismith/videogame-api/internal/service"
	"github.com/Caiismith/videogame-api/internal/store"
	"github.com/Caiismith/videogame-api/pkg/config"
	"github.com/Caiismith/videogame-api/pkg/logger"
	"github.com/Caiismith/videogame-api/pkg/retry"
	"github.com/Caiismith/videogame-api/pkg/server"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func main() {
	// 1. Load config
	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize logger
	l, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer l.Sync()

	l.Info("videogame api initializing", zap.String("env", cfg.Environment))

	// 3. Initialize MongoDB
	mongoCtx, mongoCancel := context.WithTimeout(context.Background(), cfg.MongoDB.ConnectTimeout)
	defer mongoCancel()
	client, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		l.Error("failed to connect to mongodb", err)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB.Database)
	gameStore := store.NewMongoGameStore(db.Collection(cfg.MongoDB.GamesCollection))
	developerStore := store.NewMongoDeveloperStore(db.Collection(cfg.MongoDB.DevelopersCollection))

	// 4. Bootstrap the developer allow-list
	bucket, err := allowlist.OpenBucket(context.Background(), cfg.AllowList)
	if err != nil {
		l.Error("failed to open allow-list bucket", err)
		os.Exit(1)
	}
	defer bucket.Close()

	downloader := allowlist.NewDownloader(bucket, cfg.AllowList.ObjectKey)
	retryOpts := retry.DefaultOptions()
	retryOpts.MaxAttempts = cfg.AllowList.FetchAttempts
	bootstrap := allowlist.NewBootstrap(l, gameStore, developerStore, downloader).
		WithRetryOptions(retryOpts).
		WithFetchTimeout(cfg.AllowList.FetchTimeout)

	if err := bootstrap.Run(context.Background()); err != nil {
		l.Error("failed to bootstrap allow-list", err)
		os.Exit(1)
	}

	// 5. Create service and handler
	gameService := service.NewGameService(l, gameStore, developerStore)
	handler := api.NewHandler(gameService, l)

	// 6. Start observability server
	obsServer := server.New(cfg.Server.ObsAddr, l, func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	})
	go func() {
		if err := obsServer.Start(); err != nil {
			l.Error("observability server failed", err)
		}
	}()

	// 7. Start API server
	apiServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		l.Info("api server starting", zap.String("addr", cfg.Server.Addr))
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Error("api server failed", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	// 8. Graceful shutdown
	l.Info("videogame api stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		l.Error("api server shutdown failed", err)
	}
	if err := obsServer.Shutdown(shutdownCtx); err != nil {
		l.Error("observability server shutdown failed", err)
	}

	l.Info("videogame api stopped")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"video-tube/infrastructure/cache"
	"video-tube/infrastructure/configuration"
	"video-tube/infrastructure/logger"
	"video-tube/infrastructure/media"
	"video-tube/infrastructure/persistence"
	httpHandler "video-tube/interfaces/http"
	"video-tube/server"
	"video-tube/usecase"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	mongoClient, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
		configuration.C.Database.Mongo.Name,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("MongoDB initialization failed")
		os.Exit(1)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("MongoDB ping failed")
		os.Exit(1)
	}
	logger.GetLogger().Info("MongoDB connected successfully")
	db := mongoClient.Database(configuration.C.Database.Mongo.Name)

	// Redis is optional: a nil client degrades the stats cache to a no-op.
	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - continuing without stats cache")
		redisClient = nil
	}
	statsCache := cache.NewStatsCache(redisClient)

	mediaStore, err := media.NewObjectStore(
		configuration.C.Media.Endpoint,
		configuration.C.Media.AccessKey,
		configuration.C.Media.SecretKey,
		configuration.C.Media.Bucket,
		configuration.C.Media.PublicURL,
		configuration.C.Media.UseSSL,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Object store initialization failed")
		os.Exit(1)
	}
	probe := media.NewProbe()

	userRepository := persistence.NewUserRepository(db)
	videoRepository := persistence.NewVideoRepository(db)
	commentRepository := persistence.NewCommentRepository(db)
	likeRepository := persistence.NewLikeRepository(db)
	subscriptionRepository := persistence.NewSubscriptionRepository(db)
	playlistRepository := persistence.NewPlaylistRepository(db)
	tweetRepository := persistence.NewTweetRepository(db)

	videoUsecase := usecase.NewVideoUsecase(
		videoRepository, commentRepository, likeRepository, playlistRepository, mediaStore, probe)
	commentUsecase := usecase.NewCommentUsecase(commentRepository)
	likeUsecase := usecase.NewLikeUsecase(likeRepository)
	subscriptionUsecase := usecase.NewSubscriptionUsecase(subscriptionRepository)
	playlistUsecase := usecase.NewPlaylistUsecase(playlistRepository)
	tweetUsecase := usecase.NewTweetUsecase(tweetRepository)
	dashboardUsecase := usecase.NewDashboardUsecase(
		videoRepository, commentRepository, likeRepository, subscriptionRepository, tweetRepository, statsCache)

	healthHandler := httpHandler.NewHealthHandler(mongoClient)
	videoHandler := httpHandler.NewVideoHandler(videoUsecase)
	commentHandler := httpHandler.NewCommentHandler(commentUsecase)
	likeHandler := httpHandler.NewLikeHandler(likeUsecase)
	playlistHandler := httpHandler.NewPlaylistHandler(playlistUsecase)
	subscriptionHandler := httpHandler.NewSubscriptionHandler(subscriptionUsecase)
	tweetHandler := httpHandler.NewTweetHandler(tweetUsecase)
	dashboardHandler := httpHandler.NewDashboardHandler(dashboardUsecase)

	router := server.InitiateRouter(
		healthHandler,
		videoHandler,
		commentHandler,
		likeHandler,
		playlistHandler,
		subscriptionHandler,
		tweetHandler,
		dashboardHandler,
		userRepository,
	)

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}
	_ = mongoClient.Disconnect(shutdownCtx)

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

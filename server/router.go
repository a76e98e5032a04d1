package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"video-tube/domain/repository"
	httpHandler "video-tube/interfaces/http"
	"video-tube/interfaces/middleware"
)

func InitiateRouter(
	healthHandler httpHandler.IHealthHandler,
	videoHandler httpHandler.IVideoHandler,
	commentHandler httpHandler.ICommentHandler,
	likeHandler httpHandler.ILikeHandler,
	playlistHandler httpHandler.IPlaylistHandler,
	subscriptionHandler httpHandler.ISubscriptionHandler,
	tweetHandler httpHandler.ITweetHandler,
	dashboardHandler httpHandler.IDashboardHandler,
	userRepository repository.IUser,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler.Health)

	api := router.Group("api")
	api.Use(middleware.Auth(userRepository))

	videos := api.Group("/videos")
	{
		videos.GET("", videoHandler.List)
		videos.POST("", videoHandler.Publish)
		videos.GET("/:videoId", videoHandler.GetByID)
		videos.PATCH("/:videoId", videoHandler.Update)
		videos.DELETE("/:videoId", videoHandler.Delete)
		videos.PATCH("/:videoId/toggle-publish", videoHandler.TogglePublish)

		videos.GET("/:videoId/comments", commentHandler.ListByVideo)
		videos.POST("/:videoId/comments", commentHandler.Add)
	}

	comments := api.Group("/comments")
	{
		comments.PATCH("/:commentId", commentHandler.Update)
		comments.DELETE("/:commentId", commentHandler.Delete)
	}

	likes := api.Group("/likes")
	{
		likes.POST("/videos/:videoId", likeHandler.ToggleVideo)
		likes.POST("/comments/:commentId", likeHandler.ToggleComment)
		likes.POST("/tweets/:tweetId", likeHandler.ToggleTweet)
		likes.GET("/videos", likeHandler.ListLikedVideos)
	}

	playlists := api.Group("/playlists")
	{
		playlists.POST("", playlistHandler.Create)
		playlists.GET("/:playlistId", playlistHandler.GetByID)
		playlists.PATCH("/:playlistId", playlistHandler.Update)
		playlists.DELETE("/:playlistId", playlistHandler.Delete)
		playlists.PATCH("/:playlistId/videos/:videoId", playlistHandler.AddVideo)
		playlists.DELETE("/:playlistId/videos/:videoId", playlistHandler.RemoveVideo)
	}

	tweets := api.Group("/tweets")
	{
		tweets.POST("", tweetHandler.Create)
		tweets.PATCH("/:tweetId", tweetHandler.Update)
		tweets.DELETE("/:tweetId", tweetHandler.Delete)
	}

	users := api.Group("/users")
	{
		users.GET("/:userId/playlists", playlistHandler.ListByUser)
		users.GET("/:userId/tweets", tweetHandler.ListByUser)
	}

	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.POST("/channels/:channelId", subscriptionHandler.Toggle)
		subscriptions.GET("/channels/:channelId/subscribers", subscriptionHandler.ListSubscribers)
		subscriptions.GET("/users/:subscriberId/channels", subscriptionHandler.ListSubscriptions)
	}

	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/stats", dashboardHandler.Stats)
		dashboard.GET("/videos", dashboardHandler.Videos)
	}

	return router
}

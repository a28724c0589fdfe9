package routes

import (
	"context"
	"log"
	"os"

	_ "diamond_exteriors/docs" // This will be auto-generated
	"diamond_exteriors/internal/adapter/http/handlers"
	"diamond_exteriors/internal/adapter/http/middleware"
	repository2 "diamond_exteriors/internal/adapter/persistence/repository"
	"diamond_exteriors/internal/infrastructure/storage"
	"diamond_exteriors/internal/infrastructure/videos"
	"diamond_exteriors/internal/usecase"
	"diamond_exteriors/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + getenvDefault("PORT", "8080"))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	store, err := storage.Open(getenvDefault("DATA_DIR", "./data/diamond"))
	if err != nil {
		log.Fatalf("Failed to open content store: %v", err)
	}

	repo := repository2.NewContentRepository(store)

	contentUseCase := usecase.NewContentUseCase(repo)
	estimatorUseCase := usecase.NewEstimatorUseCase(repo)
	authUseCase := usecase.NewAuthUseCase(
		os.Getenv("ADMIN_PASSWORD"),
		getenvDefault("JWT_SECRET", "diamond-dev-secret"),
		0,
	)

	rotator := usecase.NewHeroRotator(0)
	rotator.SetCount(len(repo.HeroImages()))

	var feedGateway interfaces.IVideoFeedGateway
	feedClient, err := videos.NewFeedClient(os.Getenv("VIDEO_FEED_URL"))
	if err != nil {
		log.Printf("Video feed not configured: %v", err)
	} else {
		feedGateway = feedClient
	}
	videoFeedUseCase := usecase.NewVideoFeedUseCase(feedGateway)
	go videoFeedUseCase.FetchOnce(context.Background())

	contentHandler := handlers.NewContentHandler(contentUseCase, rotator, videoFeedUseCase)
	adminHandler := handlers.NewAdminContentHandler(contentUseCase, rotator)
	estimatorHandler := handlers.NewEstimatorHandler(estimatorUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addContentRoutes(v1, contentHandler)
	addEstimatorRoutes(v1, estimatorHandler)
	addAdminRoutes(v1, authHandler, adminHandler, middleware.AdminAuth(authUseCase))
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{getenvDefault("CORS_ORIGIN", "*")},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "cyberlaw-chat/internal/app"
	"cyberlaw-chat/internal/bootstrap"
	"cyberlaw-chat/internal/cache"
	"cyberlaw-chat/internal/checklist"
	"cyberlaw-chat/internal/news"
	"cyberlaw-chat/internal/platform/rabbitmq"
	"cyberlaw-chat/internal/quiz"
	"cyberlaw-chat/internal/repository"
	"cyberlaw-chat/internal/transport/http/handler"
	"cyberlaw-chat/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(middleware.RequestLog(app.Logger), gin.Recovery())

	userRepo := repository.NewUserRepository(app.MySQL)
	sessionRepo := repository.NewSessionRepository(app.MySQL)
	messageRepo := repository.NewMessageRepository(app.MySQL)

	historyCache := cache.NewHistoryCache(
		app.Redis,
		time.Duration(app.Config.Redis.HistoryTTLSeconds)*time.Second,
		time.Duration(app.Config.Redis.HistoryDirtyTTLSeconds)*time.Second,
	)
	turnEvents := rabbitmq.NewTurnEventPublisher(app.MQConn, app.Config.RabbitMQ.TurnEventQueue)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	chatService := appsvc.NewChatService(
		sessionRepo,
		messageRepo,
		app.Backend,
		turnEvents,
		historyCache,
		app.Logger,
	)

	checklistEngine := checklist.NewEngine(app.Backend, app.Logger)
	quizService := quiz.NewService(app.Config.Quiz.BankPath, app.Config.Quiz.SampleSize)
	newsCache := cache.NewPayloadCache(app.Redis, time.Duration(app.Config.News.CacheTTLSeconds)*time.Second)
	newsClient := news.NewClient(app.Config.News.FeedURL, newsCache, app.Logger)

	healthHandler := handler.NewHealthHandler(app)
	authHandler := handler.NewAuthHandler(authService)
	chatHandler := handler.NewChatHandler(chatService)
	sessionHandler := handler.NewSessionHandler(chatService)
	checklistHandler := handler.NewChecklistHandler(checklistEngine)
	quizHandler := handler.NewQuizHandler(quizService)
	newsHandler := handler.NewNewsHandler(newsClient, app.Logger)
	fileHandler := handler.NewFileScanHandler(app.Logger)

	router.GET("/healthz", healthHandler.Check)
	router.POST("/chat", chatHandler.Compose)
	router.POST("/checklist", checklistHandler.Generate)
	router.GET("/mcq-questions", quizHandler.Questions)
	router.GET("/news", newsHandler.Feed)
	router.POST("/file/analyze", fileHandler.Analyze)

	v1 := router.Group("/api/v1")
	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", middleware.AuthJWT(app.Config.Auth.JWTSecret), authHandler.Me)

	chatGroup := v1.Group("/chat")
	chatGroup.Use(middleware.AuthJWT(app.Config.Auth.JWTSecret))
	chatGroup.POST("/sessions", chatHandler.CreateSession)
	chatGroup.GET("/sessions", chatHandler.ListSessions)
	chatGroup.DELETE("/sessions/:id", chatHandler.DeleteSession)
	chatGroup.POST("/turns", chatHandler.SendTurn)
	chatGroup.GET("/history", chatHandler.GetHistory)

	sessionGroup := router.Group("/sessions")
	sessionGroup.Use(middleware.AuthJWT(app.Config.Auth.JWTSecret))
	sessionGroup.PUT("", sessionHandler.SetFavorite)
	sessionGroup.PATCH("", sessionHandler.Rename)

	return router
}

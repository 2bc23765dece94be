package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geokjeongma/ai-server/config"
	"github.com/geokjeongma/ai-server/internal/api"
	"github.com/geokjeongma/ai-server/internal/api/handler"
	"github.com/geokjeongma/ai-server/internal/database"
	"github.com/geokjeongma/ai-server/internal/pkg/cron"
	"github.com/geokjeongma/ai-server/internal/pkg/email"
	"github.com/geokjeongma/ai-server/internal/pkg/notify"
	"github.com/geokjeongma/ai-server/internal/pkg/oauth"
	"github.com/geokjeongma/ai-server/internal/pkg/oss"
	"github.com/geokjeongma/ai-server/internal/pkg/queue"
	"github.com/geokjeongma/ai-server/internal/pkg/ws"
	"github.com/geokjeongma/ai-server/internal/repository"
	"github.com/geokjeongma/ai-server/internal/service"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	log.Println("Database connected")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	log.Println("Redis connected")

	// OSS 는 설정이 없으면 건너뛴다 (아바타 업로드만 비활성화)
	var ossClient *oss.Client
	if cfg.OSS.Endpoint != "" {
		ossClient, err = oss.NewClient(&cfg.OSS)
		if err != nil {
			log.Fatalf("Failed to init OSS client: %v", err)
		}
	}

	notificationQueue := queue.NewQueue(rdb, cfg.Queue.NotificationQueue)

	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	notifier := notify.NewNotifier(notificationQueue, wsHub)
	notifier.Start()
	log.Println("Notification worker started")

	// Repository
	userRepo := repository.NewUserRepository(db)
	cashRepo := repository.NewCashRepository(db)
	toolRepo := repository.NewToolRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	chatRepo := repository.NewChatRepository(db)
	storeInfoRepo := repository.NewStoreInfoRepository(db)
	postRepo := repository.NewPostRepository(db)
	missionRepo := repository.NewMissionRepository(db)
	automationRepo := repository.NewAutomationRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	// Service
	emailSvc := email.NewService(&cfg.Email)
	cashSvc := service.NewCashService(cashRepo, userRepo, notificationQueue)
	authSvc := service.NewAuthService(userRepo, cashSvc, emailSvc, cfg)
	userSvc := service.NewUserService(userRepo, ossClient, cfg)
	catalogSvc := service.NewCatalogService(toolRepo, templateRepo)
	favoriteSvc := service.NewFavoriteService(favoriteRepo, toolRepo)
	chatSvc := service.NewChatService(chatRepo, notificationQueue)
	storeInfoSvc := service.NewStoreInfoService(storeInfoRepo, cashSvc, cfg)
	postSvc := service.NewPostService(postRepo, userRepo)
	missionSvc := service.NewMissionService(missionRepo, cashSvc, notificationQueue, cfg)
	automationSvc := service.NewAutomationService(automationRepo, toolRepo, cashSvc, cfg)
	subscriptionSvc := service.NewSubscriptionService(subscriptionRepo, cashSvc, cfg)
	statsSvc := service.NewStatsService(userRepo, toolRepo, templateRepo, chatRepo, postRepo, rdb, cfg)

	stateStore := oauth.NewStateStore(rdb)

	// Handler
	authHandler := handler.NewAuthHandler(authSvc, stateStore)
	userHandler := handler.NewUserHandler(userSvc)
	cashHandler := handler.NewCashHandler(cashSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	favoriteHandler := handler.NewFavoriteHandler(favoriteSvc)
	chatHandler := handler.NewChatHandler(chatSvc)
	storeInfoHandler := handler.NewStoreInfoHandler(storeInfoSvc)
	postHandler := handler.NewPostHandler(postSvc, userSvc)
	missionHandler := handler.NewMissionHandler(missionSvc)
	automationHandler := handler.NewAutomationHandler(automationSvc)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionSvc)
	statsHandler := handler.NewStatsHandler(statsSvc)
	adminHandler := handler.NewAdminHandler(catalogSvc, userSvc, cashSvc, statsSvc)
	websocketHandler := handler.NewWebSocketHandler(wsHub, cfg.JWT.Secret)

	router := api.NewRouter(
		authHandler,
		userHandler,
		cashHandler,
		catalogHandler,
		favoriteHandler,
		chatHandler,
		storeInfoHandler,
		postHandler,
		missionHandler,
		automationHandler,
		subscriptionHandler,
		statsHandler,
		adminHandler,
		websocketHandler,
		userRepo,
		cfg,
	)
	engine := router.Setup()

	// 구독 만료 스윕
	cronSvc := cron.NewService(subscriptionRepo)
	cronSvc.Start()
	log.Println("Cron service started")

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: engine,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	cronSvc.Stop()
	notifier.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

package api

import (
	"github.com/gin-gonic/gin"

	"github.com/geokjeongma/ai-server/config"
	"github.com/geokjeongma/ai-server/internal/api/handler"
	"github.com/geokjeongma/ai-server/internal/api/middleware"
	"github.com/geokjeongma/ai-server/internal/repository"
)

type Router struct {
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	cashHandler         *handler.CashHandler
	catalogHandler      *handler.CatalogHandler
	favoriteHandler     *handler.FavoriteHandler
	chatHandler         *handler.ChatHandler
	storeInfoHandler    *handler.StoreInfoHandler
	postHandler         *handler.PostHandler
	missionHandler      *handler.MissionHandler
	automationHandler   *handler.AutomationHandler
	subscriptionHandler *handler.SubscriptionHandler
	statsHandler        *handler.StatsHandler
	adminHandler        *handler.AdminHandler
	websocketHandler    *handler.WebSocketHandler
	userRepo            *repository.UserRepository
	cfg                 *config.Config
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	cashHandler *handler.CashHandler,
	catalogHandler *handler.CatalogHandler,
	favoriteHandler *handler.FavoriteHandler,
	chatHandler *handler.ChatHandler,
	storeInfoHandler *handler.StoreInfoHandler,
	postHandler *handler.PostHandler,
	missionHandler *handler.MissionHandler,
	automationHandler *handler.AutomationHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	statsHandler *handler.StatsHandler,
	adminHandler *handler.AdminHandler,
	websocketHandler *handler.WebSocketHandler,
	userRepo *repository.UserRepository,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:         authHandler,
		userHandler:         userHandler,
		cashHandler:         cashHandler,
		catalogHandler:      catalogHandler,
		favoriteHandler:     favoriteHandler,
		chatHandler:         chatHandler,
		storeInfoHandler:    storeInfoHandler,
		postHandler:         postHandler,
		missionHandler:      missionHandler,
		automationHandler:   automationHandler,
		subscriptionHandler: subscriptionHandler,
		statsHandler:        statsHandler,
		adminHandler:        adminHandler,
		websocketHandler:    websocketHandler,
		userRepo:            userRepo,
		cfg:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))

	api := engine.Group("/api")
	{
		// WebSocket (토큰은 쿼리 파라미터)
		api.GET("/ws", r.websocketHandler.Handle)

		// 공개 - 인증
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/verify-email", r.authHandler.VerifyEmail)
			auth.GET("/kakao", r.authHandler.KakaoAuth)
			auth.GET("/kakao/callback", r.authHandler.KakaoCallback)
		}

		// 레거시 클라이언트용 가입 별칭
		api.POST("/users", r.authHandler.Register)

		// 공개 - 카탈로그/게시판/통계
		api.GET("/tools", r.catalogHandler.ListTools)
		api.GET("/tools/:id", r.catalogHandler.GetTool)
		api.GET("/templates", r.catalogHandler.ListTemplates)
		api.GET("/templates/:id", r.catalogHandler.GetTemplate)
		api.GET("/posts", r.postHandler.List)
		api.GET("/posts/:id", r.postHandler.Get)
		api.GET("/stats", r.statsHandler.Get)

		// 공개 사용자 조회
		api.GET("/users/:id", r.userHandler.Get)

		// 인증 필요
		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(r.cfg.JWT.Secret))
		{
			user := authenticated.Group("/user")
			{
				user.GET("/profile", r.userHandler.GetProfile)
				user.PUT("/profile", r.userHandler.UpdateProfile)
				user.POST("/avatar", r.userHandler.UploadAvatar)
			}

			// 사용 횟수 보고
			authenticated.PATCH("/tools/:id/usage", r.catalogHandler.UseTool)
			authenticated.PATCH("/templates/:id/usage", r.catalogHandler.UseTemplate)

			// AI캐시
			authenticated.GET("/users/:id/ai-cash", r.cashHandler.Balance)
			authenticated.GET("/users/:id/ai-cash/transactions", r.cashHandler.Transactions)
			authenticated.POST("/users/:id/ai-cash/charge", r.cashHandler.Charge)
			authenticated.POST("/users/:id/ai-cash/spend", r.cashHandler.Spend)

			// 즐겨찾기
			authenticated.GET("/users/:id/favorites", r.favoriteHandler.List)
			authenticated.POST("/favorites", r.favoriteHandler.Add)
			authenticated.DELETE("/favorites", r.favoriteHandler.Remove)

			// AI 비서 채팅
			authenticated.POST("/chat", r.chatHandler.Send)
			authenticated.GET("/chat/:id", r.chatHandler.History)

			// 매장 정보
			authenticated.GET("/store-info", r.storeInfoHandler.List)
			authenticated.POST("/store-info", r.storeInfoHandler.Create)
			authenticated.PUT("/store-info/:id", r.storeInfoHandler.Update)
			authenticated.DELETE("/store-info/:id", r.storeInfoHandler.Delete)

			// 커뮤니티 게시판
			authenticated.POST("/posts", r.postHandler.Create)
			authenticated.PUT("/posts/:id", r.postHandler.Update)
			authenticated.DELETE("/posts/:id", r.postHandler.Delete)

			// 챌린저 미션
			authenticated.GET("/missions", r.missionHandler.List)
			authenticated.POST("/missions/:day/complete", r.missionHandler.Complete)

			// 자동화 진행률
			authenticated.GET("/automation", r.automationHandler.ListAll)
			authenticated.GET("/automation/:toolId/progress", r.automationHandler.Get)
			authenticated.POST("/automation/:toolId/progress", r.automationHandler.Advance)

			// 구독
			authenticated.POST("/subscriptions", r.subscriptionHandler.Purchase)
			authenticated.GET("/subscriptions/me", r.subscriptionHandler.GetCurrent)
			authenticated.DELETE("/subscriptions/me", r.subscriptionHandler.Cancel)
		}

		// 관리자
		admin := api.Group("/admin")
		admin.Use(middleware.Auth(r.cfg.JWT.Secret), middleware.AdminOnly(r.userRepo))
		{
			admin.POST("/tools", r.adminHandler.CreateTool)
			admin.PATCH("/tools/:id", r.adminHandler.UpdateTool)
			admin.DELETE("/tools/:id", r.adminHandler.DeleteTool)
			admin.POST("/templates", r.adminHandler.CreateTemplate)
			admin.PATCH("/templates/:id", r.adminHandler.UpdateTemplate)
			admin.DELETE("/templates/:id", r.adminHandler.DeleteTemplate)
			admin.GET("/users", r.adminHandler.ListUsers)
			admin.POST("/users/:id/cash", r.adminHandler.GrantCash)
			admin.GET("/stats", r.adminHandler.Stats)
		}
	}

	return engine
}

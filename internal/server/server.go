package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"agora/internal/config"
	"agora/internal/handler"
	adminHandler "agora/internal/handler/admin"
	authHandler "agora/internal/handler/auth"
	forumHandler "agora/internal/handler/forum"
	messageHandler "agora/internal/handler/message"
	pmHandler "agora/internal/handler/pm"
	userHandler "agora/internal/handler/user"
	"agora/internal/pkg/cache"
	"agora/internal/pkg/jwt"
	"agora/internal/pkg/mongodb"
	"agora/internal/pkg/storagefactory"
	authRepo "agora/internal/repository/auth"
	forumRepo "agora/internal/repository/forum"
	pmRepo "agora/internal/repository/pm"
	systemRepo "agora/internal/repository/system"
	"agora/internal/server/middleware"
	"agora/internal/service"
)

// Server HTTP 服务器
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	mongo  *mongodb.Client
	redis  *cache.RedisCache
}

// New 创建服务器实例
func New(cfg *config.Config) (*Server, error) {
	// 设置 Gin 模式
	switch cfg.Server.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建 Gin 引擎
	engine := gin.New()

	// 初始化 MongoDB（必需）
	mongoClient, err := mongodb.New(&cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")

	// 创建索引
	if err := mongodb.EnsureIndexes(mongoClient.Database()); err != nil {
		log.Warn().Err(err).Msg("failed to ensure indexes")
	}

	// 初始化 Redis（可选，缺失时设置不缓存、认证接口不限流）
	var redisCache *cache.RedisCache
	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedisCache(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, continuing without it")
		} else {
			redisCache = rc
			log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")
		}
	}

	srv := &Server{
		cfg:    cfg,
		engine: engine,
		mongo:  mongoClient,
		redis:  redisCache,
	}

	if err := srv.setupRoutes(); err != nil {
		return nil, err
	}

	return srv, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() error {
	// 全局中间件
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.Logger())
	s.engine.Use(middleware.CORS(s.cfg.CORS.AllowedOrigins))

	// 健康检查
	healthHandler := handler.NewHealthHandler(s.mongo)
	s.engine.GET("/health", healthHandler.Health)
	s.engine.GET("/ready", healthHandler.Ready)

	// Swagger 文档
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 存储后端（头像）
	store, err := storagefactory.NewStorage(&s.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	// 本地存储时直接挂载静态目录
	if s.cfg.Storage.Type == "local" && s.cfg.Storage.Local != nil {
		s.engine.Static("/uploads", s.cfg.Storage.Local.BasePath)
	}

	// JWT 配置
	jwtSecret := s.cfg.Auth.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "default-secret-key-change-in-production"
		log.Warn().Msg("JWT secret not configured, using default (NOT SECURE for production)")
	}

	accessTokenExpiry := s.cfg.Auth.AccessTokenExpiry
	if accessTokenExpiry == 0 {
		accessTokenExpiry = 15 * time.Minute
	}

	refreshTokenExpiry := s.cfg.Auth.RefreshTokenExpiry
	if refreshTokenExpiry == 0 {
		refreshTokenExpiry = 7 * 24 * time.Hour
	}

	jwtUtil := jwt.NewJWT(jwtSecret, accessTokenExpiry, refreshTokenExpiry)

	// 仓库层
	db := s.mongo.Database()
	userRepo := authRepo.NewUserRepo(db)
	fRepo := forumRepo.NewForumRepo(db)
	fMsgRepo := forumRepo.NewMessageRepo(db)
	convRepo := pmRepo.NewConversationRepo(db)
	pmMsgRepo := pmRepo.NewMessageRepo(db)
	settingsRepo := systemRepo.NewSettingsRepo(db)

	// 服务层
	settingsSvc := service.NewSettingsService(settingsRepo, s.redis)
	authSvc := service.NewAuthService(userRepo, settingsSvc, jwtSecret, accessTokenExpiry, refreshTokenExpiry)
	userSvc := service.NewUserService(userRepo, store)
	forumSvc := service.NewForumService(fRepo, fMsgRepo)
	messageSvc := service.NewMessageService(fMsgRepo, forumSvc, userSvc)
	pmSvc := service.NewPMService(convRepo, pmMsgRepo, userRepo, userSvc)
	adminSvc := service.NewAdminService(userRepo)

	// 处理器
	authHdl := authHandler.NewHandler(authSvc)
	userHdl := userHandler.NewHandler(userSvc, messageSvc)
	forumHdl := forumHandler.NewHandler(forumSvc)
	messageHdl := messageHandler.NewHandler(messageSvc)
	pmHdl := pmHandler.NewHandler(pmSvc)
	adminHdl := adminHandler.NewHandler(adminSvc, settingsSvc)

	// API v1
	v1 := s.engine.Group("/api/v1")
	{
		// 认证接口（公开，限流）
		authGroup := v1.Group("/auth")
		authGroup.Use(middleware.RateLimit(s.redis, &s.cfg.RateLimit))
		{
			authGroup.POST("/register", authHdl.Register)
			authGroup.POST("/login", authHdl.Login)
			authGroup.POST("/refresh", authHdl.Refresh)
		}

		// 需要认证的接口
		authed := v1.Group("")
		authed.Use(middleware.Auth(jwtUtil))
		{
			authed.GET("/auth/check-auth", authHdl.CheckAuth)
			authed.POST("/auth/logout", authHdl.Logout)

			// 用户
			authed.GET("/users/profile", userHdl.GetProfile)
			authed.PUT("/users/profile", userHdl.UpdateProfile)
			authed.POST("/users/avatar", userHdl.UploadAvatar)
			authed.GET("/users/search", userHdl.Search)
			authed.GET("/users/profile/:login", userHdl.GetPublicProfile)
			authed.GET("/users/:id/messages", userHdl.GetMessages)

			// 论坛
			authed.GET("/forums", forumHdl.List)
			authed.GET("/forums/:id", forumHdl.Get)

			// 留言
			authed.GET("/messages", messageHdl.List)
			authed.POST("/messages", messageHdl.Create)
			authed.GET("/messages/:id", messageHdl.Get)
			authed.PUT("/messages/:id", messageHdl.Update)
			authed.DELETE("/messages/:id", messageHdl.Delete)
			authed.POST("/messages/:id/replies", messageHdl.AddReply)
			authed.POST("/messages/:id/like", messageHdl.ToggleLike)
			authed.POST("/messages/:id/replies/:replyId/like", messageHdl.ToggleReplyLike)

			// 私信
			authed.GET("/private-messages/conversations", pmHdl.ListConversations)
			authed.GET("/private-messages/conversations/:id", pmHdl.GetMessages)
			authed.POST("/private-messages/conversations/:id/read", pmHdl.MarkRead)
			authed.POST("/private-messages/send", pmHdl.Send)
		}

		// 需要管理员权限的接口
		admin := v1.Group("")
		admin.Use(middleware.Auth(jwtUtil), middleware.RequireAdmin())
		{
			admin.POST("/forums", forumHdl.Create)
			admin.GET("/forums/admin/all", forumHdl.ListAll)
			admin.PUT("/forums/:id/access", forumHdl.UpdateAccess)
			admin.DELETE("/forums/:id", forumHdl.Delete)

			admin.GET("/admin/users", adminHdl.ListUsers)
			admin.GET("/admin/users/pending", adminHdl.ListPending)
			admin.POST("/admin/users/:id/approve", adminHdl.Approve)
			admin.POST("/admin/users/:id/reject", adminHdl.Reject)
			admin.PUT("/admin/users/:id/role", adminHdl.ChangeRole)
			admin.PUT("/admin/users/:id/status", adminHdl.ChangeStatus)
			admin.GET("/admin/settings", adminHdl.GetSettings)
			admin.PUT("/admin/settings", adminHdl.UpdateSettings)
		}
	}

	return nil
}

// Run 启动服务器
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	// 启动服务器
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待关闭信号或错误
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")

		// 关闭连接
		if s.mongo != nil {
			if err := s.mongo.Close(context.Background()); err != nil {
				log.Error().Err(err).Msg("failed to close MongoDB connection")
			}
		}
		if s.redis != nil {
			if err := s.redis.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close Redis connection")
			}
		}

		return srv.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}

// Engine 获取 Gin 引擎 (用于测试)
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

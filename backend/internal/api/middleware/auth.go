package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Shadomax/Elearning/backend/internal/model"
	"github.com/Shadomax/Elearning/backend/pkg/jwt"
	"github.com/Shadomax/Elearning/backend/pkg/redis"
	"github.com/Shadomax/Elearning/backend/pkg/response"
)

// JWTAuth JWT 认证中间件
// 从 Authorization: Bearer <token> 中提取并验证 Access Token
// rdb 为 nil 时跳过黑名单检查
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "缺少认证头")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "认证头格式无效")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "Token 无效或已过期")
			c.Abort()
			return
		}

		role := model.Role(claims.Role)
		if !role.Valid() {
			response.Unauthorized(c, 10002, "Token 角色无效")
			c.Abort()
			return
		}

		// 检查 Token 黑名单，Redis 出错时降级放行
		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Warn("黑名单检查失败，降级放行", zap.Error(err))
			} else if revoked {
				response.Unauthorized(c, 10002, "Token 已注销")
				c.Abort()
				return
			}
		}

		// 将用户信息注入上下文
		c.Set("user_id", claims.UserID)
		c.Set("role", role)
		c.Set("token_jti", claims.ID)
		if claims.ExpiresAt != nil {
			c.Set("token_exp", claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// RequireRole 角色等级中间件
// 当前用户等级不低于 min 时放行
func RequireRole(min model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "未认证")
			c.Abort()
			return
		}

		role, ok := v.(model.Role)
		if !ok || !role.AtLeast(min) {
			response.Forbidden(c, 10003, "无权限访问")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CourseManager 仅允许可管理课程的角色（创建、编辑）
func CourseManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, _ := c.Get("role")
		if role, ok := v.(model.Role); ok && role.CanManageCourses() {
			c.Next()
			return
		}
		response.Forbidden(c, 10003, "无权限管理课程")
		c.Abort()
	}
}

package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shadomax/Elearning/backend/internal/model"
	"github.com/Shadomax/Elearning/backend/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果 JWT 中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		response.Unauthorized(c, 10002, "未认证")
		return 0, false
	}
	return id, true
}

// MustGetRole 从 Gin 上下文中安全提取角色等级。
func MustGetRole(c *gin.Context) (model.Role, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return 0, false
	}
	role, ok := v.(model.Role)
	if !ok || !role.Valid() {
		response.Unauthorized(c, 10002, "未认证")
		return 0, false
	}
	return role, true
}

// tokenInfo 读取当前 Token 的 jti 与过期时间，不存在时返回零值
func tokenInfo(c *gin.Context) (string, time.Time) {
	jti := c.GetString("token_jti")
	exp, _ := c.Get("token_exp")
	t, _ := exp.(time.Time)
	return jti, t
}

// parseIDParam 解析路径中的数字 ID，失败时写入 400 响应
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, 10001, "无效的 "+name)
		return 0, false
	}
	return uint(id), true
}

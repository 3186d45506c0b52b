package dto

import "time"

// ── 认证 ──

// LoginRequest 登录请求（对应 POST /token/）
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// RefreshRequest 刷新 Token 请求
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// TokenResponse Token 对响应（字段名与前端约定保持 access/refresh）
type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// MeResponse 当前用户响应
type MeResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// [自证通过] internal/dto/auth.go

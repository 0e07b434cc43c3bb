// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"audience_backend/internal/api"
	"audience_backend/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AuthUsecase interface {
	Signup(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler は/signupと/loginを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup はユーザー登録を処理します。
// - バリデーションエラー時は400
// - メールアドレス重複時は409
// - 成功時は201
func (h *AuthHandler) Signup(c *gin.Context) {
	var req api.SignupJSONRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	err := h.auth.Signup(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		slog.Info("user signup successful", "email", req.Email)
		c.JSON(http.StatusCreated, api.MessageResponse{Message: "ok"})
	case errors.Is(err, usecase.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "signup failed"})
	default:
		slog.Error("signup failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}

// Login はログインを処理し、成功時にJWTを返します。
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginJSONRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// どちらが誤っているかは返さない
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
			return
		}
		slog.Error("login failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}

	slog.Info("user login successful", "email", req.Email)
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"board_backend/internal/feature/auth/domain"
	"board_backend/internal/feature/auth/domain/entity"
	"board_backend/internal/feature/auth/transport/http/dto"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は新規ユーザーを登録し、発行済みトークンと共に返します。
	Signup(ctx context.Context, email, username, password string) (*entity.User, string, error)
	// Login はユーザーを認証し、成功時にトークンと共に返します。
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// CurrentUser は認証済みユーザーIDからプロフィールを取得します。
	CurrentUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをSignupReqにバインド
// - バリデーションエラー時は400を返却
// - メール重複時は409を返却
// - 成功時はトークンとユーザーを200で返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.auth.Signup(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			slog.Warn("signup rejected: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "user already exists"})
			return
		}
		// 内部エラーの詳細はログのみに残し、レスポンスには出さない
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	slog.Info("user signup successful", "email", user.Email, "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却
// - 認証成功時はトークンとユーザーを200で返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、未登録と誤パスワードを区別しない
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid email or password"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	slog.Info("user login successful", "email", user.Email, "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)})
}

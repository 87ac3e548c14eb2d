package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"board_backend/internal/feature/auth/domain"
	"board_backend/internal/feature/auth/transport/http/dto"
	jwtmw "board_backend/internal/platform/jwt"
)

// UserHandler は認証済みユーザー向けのプロフィールAPIを処理します。
type UserHandler struct {
	auth AuthUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(auth AuthUsecase) *UserHandler {
	return &UserHandler{auth: auth}
}

// Me は /users/me エンドポイントを処理します。
// 認証ミドルウェアがコンテキストに設定したユーザーIDでプロフィールを取得します。
func (h *UserHandler) Me(c *gin.Context) {
	raw, exists := c.Get(jwtmw.ContextUserID)
	userID, ok := raw.(uuid.UUID)
	if !exists || !ok {
		// 認証ミドルウェアを通過していないルート設定は想定外
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
			return
		}
		slog.Error("current user lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

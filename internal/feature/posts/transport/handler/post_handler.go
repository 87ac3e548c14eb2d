// Package handler はpostsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"board_backend/internal/feature/posts/domain"
	"board_backend/internal/feature/posts/domain/entity"
	"board_backend/internal/feature/posts/transport/http/dto"
	jwtmw "board_backend/internal/platform/jwt"
)

// PostUsecase は投稿操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type PostUsecase interface {
	// Create は認証済みユーザーを所有者として新規投稿を作成します。
	Create(ctx context.Context, userID uuid.UUID, title, content string) (*entity.Post, error)
	// List は作成日時の降順で投稿のページと全件数を返します。
	List(ctx context.Context, page, limit int) ([]entity.Post, int, error)
	// Get はIDで投稿を1件取得します。
	Get(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	// Delete は所有者チェックの上で投稿を削除します。
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// PostHandler は投稿操作のHTTPリクエストを処理します。
type PostHandler struct {
	posts PostUsecase
}

// NewPostHandler は指定されたusecaseでPostHandlerの新しいインスタンスを生成します。
func NewPostHandler(posts PostUsecase) *PostHandler {
	return &PostHandler{posts: posts}
}

// callerID は認証ミドルウェアがコンテキストに設定したユーザーIDを取り出します。
func callerID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(jwtmw.ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := raw.(uuid.UUID)
	return id, ok
}

// Create は投稿作成APIエンドポイントを処理します。
// - リクエストJSONをCreatePostReqにバインド
// - バリデーションエラー時は400を返却
// - 成功時は作成された投稿を201で返却
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create post validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	post, err := h.posts.Create(c.Request.Context(), userID, req.Title, req.Content)
	if err != nil {
		slog.Error("create post failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	slog.Info("post created", "post_id", post.ID, "user_id", userID)
	c.JSON(http.StatusCreated, dto.NewPostResponse(post))
}

// List は投稿一覧APIエンドポイントを処理します。認証は不要です。
//
// エンドポイント例:
// GET /posts?page=1&limit=10
func (h *PostHandler) List(c *gin.Context) {
	var query dto.ListPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	posts, total, err := h.posts.List(c.Request.Context(), query.Page, query.Limit)
	if err != nil {
		slog.Error("list posts failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	// データをフォーマット
	out := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, dto.NewPostResponse(&posts[i]))
	}

	c.JSON(http.StatusOK, dto.PaginatedPostsResponse{
		Data:  out,
		Page:  query.Page,
		Limit: query.Limit,
		Total: total,
	})
}

// Get は投稿取得APIエンドポイントを処理します。認証は不要です。
// 投稿が存在しない場合は404を返却します。
func (h *PostHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// 不正なIDは存在しないIDと同様に扱う
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
		return
	}

	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
			return
		}
		slog.Error("get post failed", "error", err, "post_id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.NewPostResponse(post))
}

// Delete は投稿削除APIエンドポイントを処理します。
// - 投稿が存在しない場合は404を返却
// - 呼び出し元が所有者でない場合は403を返却
// - 成功時は204を返却
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
		return
	}

	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.posts.Delete(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrPostNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
		case errors.Is(err, domain.ErrPostForbidden):
			slog.Warn("post delete forbidden", "post_id", id, "user_id", userID)
			c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "forbidden"})
		default:
			slog.Error("delete post failed", "error", err, "post_id", id)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		}
		return
	}

	slog.Info("post deleted", "post_id", id, "user_id", userID)
	c.Status(http.StatusNoContent)
}

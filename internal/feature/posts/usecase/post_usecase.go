// Package usecase は投稿操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"sort"
	"time"

	"board_backend/internal/feature/posts/domain"
	"board_backend/internal/feature/posts/domain/entity"

	"github.com/google/uuid"
)

const (
	// DefaultPage はページ指定がない場合のページ番号です。
	DefaultPage = 1
	// DefaultLimit は1ページあたりのデフォルト返却件数です。
	DefaultLimit = 10
)

// PostRepository は投稿エンティティの保存層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type PostRepository interface {
	// Insert は投稿をストアに追加します。
	Insert(ctx context.Context, post *entity.Post) error

	// FindByID はIDで投稿を取得します。
	// 投稿が存在しない場合、domain.ErrPostNotFoundを返します。
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindAll は全投稿の順序不定なスナップショットを返します。
	FindAll(ctx context.Context) ([]entity.Post, error)

	// Delete はIDで投稿を削除します。
	// 投稿が存在しない場合、domain.ErrPostNotFoundを返します。
	Delete(ctx context.Context, id uuid.UUID) error
}

// postUsecase は投稿操作のユースケースを実装します。
type postUsecase struct {
	posts PostRepository
}

// NewPostUsecase はpostUsecaseの新しいインスタンスを生成します。
func NewPostUsecase(posts PostRepository) *postUsecase {
	return &postUsecase{posts: posts}
}

// Create は認証済みユーザーを所有者として新規投稿を作成します。
func (pu *postUsecase) Create(ctx context.Context, userID uuid.UUID, title, content string) (*entity.Post, error) {
	post := &entity.Post{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := pu.posts.Insert(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// List は作成日時の降順で投稿のページを返します。
// 範囲外のページ番号や件数はデフォルト値に丸められます。
// 返り値のtotalはページに関係なく全投稿数を表します。
func (pu *postUsecase) List(ctx context.Context, page, limit int) ([]entity.Post, int, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	posts, err := pu.posts.FindAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	// 新しい投稿が先頭に来るようソート
	// 同時刻の投稿同士の順序は保証しない
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	total := len(posts)
	start := (page - 1) * limit
	if start >= total {
		// データ範囲を超えたページは空リストを返す（totalは全件数のまま）
		return []entity.Post{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}

	return posts[start:end], total, nil
}

// Get はIDで投稿を1件取得します。認証は不要です。
func (pu *postUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	return pu.posts.FindByID(ctx, id)
}

// Delete は所有者チェックの上で投稿を削除します。
// 呼び出し元が所有者でない場合、domain.ErrPostForbiddenを返します。
func (pu *postUsecase) Delete(ctx context.Context, id, userID uuid.UUID) error {
	post, err := pu.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return domain.ErrPostForbidden
	}
	return pu.posts.Delete(ctx, id)
}

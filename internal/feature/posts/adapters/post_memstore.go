// Package adapters はpostsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"board_backend/internal/feature/posts/domain"
	"board_backend/internal/feature/posts/domain/entity"
	"board_backend/internal/feature/posts/usecase"
	"board_backend/internal/platform/memstore"

	"github.com/google/uuid"
)

// postMemstore はPostRepositoryインターフェースのインメモリ実装です。
type postMemstore struct {
	posts *memstore.Table[uuid.UUID, entity.Post]
}

// postMemstoreがPostRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.PostRepository = (*postMemstore)(nil)

// NewPostMemstore はpostMemstoreの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewPostMemstore(posts *memstore.Table[uuid.UUID, entity.Post]) *postMemstore {
	return &postMemstore{posts: posts}
}

// Insert は投稿をストアに追加します。
func (r *postMemstore) Insert(ctx context.Context, p *entity.Post) error {
	r.posts.Insert(p.ID, *p)
	return nil
}

// FindByID はIDで投稿を取得します。
// 投稿が存在しない場合、domain.ErrPostNotFoundを返します。
func (r *postMemstore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	p, ok := r.posts.Get(id)
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return &p, nil
}

// FindAll は全投稿の順序不定なスナップショットを返します。
func (r *postMemstore) FindAll(ctx context.Context) ([]entity.Post, error) {
	return r.posts.Snapshot(), nil
}

// Delete はIDで投稿を削除します。
// 投稿が存在しない場合、domain.ErrPostNotFoundを返します。
func (r *postMemstore) Delete(ctx context.Context, id uuid.UUID) error {
	if !r.posts.Delete(id) {
		return domain.ErrPostNotFound
	}
	return nil
}

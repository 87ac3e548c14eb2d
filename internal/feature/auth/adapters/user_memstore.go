// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"board_backend/internal/feature/auth/domain"
	"board_backend/internal/feature/auth/domain/entity"
	"board_backend/internal/feature/auth/usecase"
	"board_backend/internal/platform/memstore"

	"github.com/google/uuid"
)

// userMemstore はUserRepositoryインターフェースのインメモリ実装です。
// ユーザーテーブルに加えて、email→ユーザーIDの二次インデックスを管理します。
type userMemstore struct {
	users      *memstore.Table[uuid.UUID, entity.User]
	emailIndex *memstore.Table[string, uuid.UUID]
}

// userMemstoreがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userMemstore)(nil)

// NewUserMemstore はuserMemstoreの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserMemstore(users *memstore.Table[uuid.UUID, entity.User], emailIndex *memstore.Table[string, uuid.UUID]) *userMemstore {
	return &userMemstore{users: users, emailIndex: emailIndex}
}

// Create はユーザーをストアに追加します。
// 先にemailインデックスを予約することで、同一メールアドレスの並行サインアップは
// 必ず片方だけが成功します。テーブルへの挿入は失敗しないため、巻き戻しは不要です。
// 同じメールアドレスが既に存在する場合、domain.ErrUserAlreadyExistsを返します。
func (r *userMemstore) Create(ctx context.Context, u *entity.User) error {
	if !r.emailIndex.InsertIfAbsent(u.Email, u.ID) {
		return domain.ErrUserAlreadyExists
	}
	r.users.Insert(u.ID, *u)
	return nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
func (r *userMemstore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	id, ok := r.emailIndex.Get(email)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u, ok := r.users.Get(id)
	if !ok {
		// インデックスだけが見える瞬間は予約直後のみで、直後にユーザー挿入が続く
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
func (r *userMemstore) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users.Get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"board_backend/internal/feature/auth/domain"
	"board_backend/internal/feature/auth/domain/entity"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository はユーザーエンティティの保存層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストアに追加します。
	// 同じメールアドレスのユーザーが既に存在する場合、domain.ErrUserAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

// TokenGenerator はトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みトークンを生成します。
	GenerateToken(userID uuid.UUID, email string) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	tokens TokenGenerator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens TokenGenerator) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
	}
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録し、
// 発行したトークンと共に作成済みユーザーを返します。
func (u *authUsecase) Signup(ctx context.Context, email, username, password string) (*entity.User, string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		ID:        uuid.New(),
		Email:     email,
		Username:  username,
		Password:  string(hashed),
		CreatedAt: time.Now(),
	}

	// メールアドレスの予約とユーザー挿入はリポジトリ側で一体化されている
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Login はユーザーを認証し、成功時にトークンを返します。
// メールアドレスとパスワードを検証し、署名済みトークンを生成します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	// メールアドレスでユーザーを検索
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", err
		}
		return nil, "", domain.ErrInvalidCredentials
	}

	// 注入されたジェネレーターを使用してトークンを生成
	token, tokenErr := u.tokens.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return user, token, nil
}

// CurrentUser は認証済みユーザーIDからプロフィールを取得します。
func (u *authUsecase) CurrentUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

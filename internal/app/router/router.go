package router

import (
	authhandler "board_backend/internal/feature/auth/transport/handler"
	posthandler "board_backend/internal/feature/posts/transport/handler"
	platformhandler "board_backend/internal/platform/http/handler"
	jwtmw "board_backend/internal/platform/jwt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter は全ルートを登録したgin.Engineを生成します。
func NewRouter(auth *authhandler.AuthHandler, user *authhandler.UserHandler,
	posts *posthandler.PostHandler, jwtSecret string) *gin.Engine {
	r := gin.Default()

	// CORS（任意のオリジン・メソッド・ヘッダーを許可）
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/health", platformhandler.Health)
	r.HEAD("/health", platformhandler.Health)
	r.OPTIONS("/health", platformhandler.Health)
	// 新規ユーザー登録
	r.POST("/auth/signup", auth.Signup)
	// ログイン（トークン発行）
	r.POST("/auth/login", auth.Login)
	// 投稿の閲覧は誰でも可能
	r.GET("/posts", posts.List)
	r.GET("/posts/:id", posts.Get)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	authRequired := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに Bearer トークンが必要になる
	authRequired.Use(jwtmw.AuthRequired(jwtSecret))
	{
		authRequired.GET("/users/me", user.Me)
		authRequired.POST("/posts", posts.Create)
		authRequired.DELETE("/posts/:id", posts.Delete)
	}

	return r
}

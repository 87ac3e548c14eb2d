package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"board_backend/internal/app/router"
	authadapters "board_backend/internal/feature/auth/adapters"
	authentity "board_backend/internal/feature/auth/domain/entity"
	authhandler "board_backend/internal/feature/auth/transport/handler"
	authusecase "board_backend/internal/feature/auth/usecase"
	postadapters "board_backend/internal/feature/posts/adapters"
	postentity "board_backend/internal/feature/posts/domain/entity"
	posthandler "board_backend/internal/feature/posts/transport/handler"
	postusecase "board_backend/internal/feature/posts/usecase"
	"board_backend/internal/platform/config"
	jwtmw "board_backend/internal/platform/jwt"
	"board_backend/internal/platform/memstore"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// 設定の読み込み（JWT_SECRET未設定なら起動しない）
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// インメモリストア（プロセス終了で全データ消失）
	users := memstore.NewTable[uuid.UUID, authentity.User]()
	emailIndex := memstore.NewTable[string, uuid.UUID]()
	posts := memstore.NewTable[uuid.UUID, postentity.Post]()

	// Repository
	userRepo := authadapters.NewUserMemstore(users, emailIndex)
	postRepo := postadapters.NewPostMemstore(posts)

	// トークンジェネレーター
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	postUC := postusecase.NewPostUsecase(postRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	userH := authhandler.NewUserHandler(authUC)
	postH := posthandler.NewPostHandler(postUC)

	// ルータ生成
	r := router.NewRouter(authH, userH, postH, cfg.JWTSecret)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

// Package dto defines data transfer objects for the posts feature's HTTP transport layer.
package dto

// CreatePostReq represents the request body for the POST /posts endpoint.
// It uses Gin's binding tags for validation (required, title and content length).
type CreatePostReq struct {
	Title   string `json:"title" binding:"required,min=1,max=200"`
	Content string `json:"content" binding:"required,min=1,max=5000"`
}

// ListPostsQuery は GET /posts のページネーションクエリパラメータを表します。
// 不正な値はユースケース側でデフォルト値に丸められます。
type ListPostsQuery struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}

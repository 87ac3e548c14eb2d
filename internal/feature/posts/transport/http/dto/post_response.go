package dto

import "board_backend/internal/feature/posts/domain/entity"

// PostResponse is the outward representation of a post.
// Timestamps are epoch seconds.
type PostResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"`
}

// PaginatedPostsResponse wraps a page of posts.
// Total counts all posts, not only the returned page.
type PaginatedPostsResponse struct {
	Data  []PostResponse `json:"data"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Total int            `json:"total"`
}

// ErrorResponse is the structured error body shared by all post endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewPostResponse converts a domain post into its outward representation.
func NewPostResponse(p *entity.Post) PostResponse {
	return PostResponse{
		ID:        p.ID.String(),
		UserID:    p.UserID.String(),
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt.Unix(),
	}
}

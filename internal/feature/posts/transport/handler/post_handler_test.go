package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"board_backend/internal/feature/posts/domain"
	"board_backend/internal/feature/posts/domain/entity"
	jwtmw "board_backend/internal/platform/jwt"
)

// mockPostUsecase is a mock implementation of the PostUsecase interface.
type mockPostUsecase struct {
	CreateFunc func(ctx context.Context, userID uuid.UUID, title, content string) (*entity.Post, error)
	ListFunc   func(ctx context.Context, page, limit int) ([]entity.Post, int, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	DeleteFunc func(ctx context.Context, id, userID uuid.UUID) error
}

func (m *mockPostUsecase) Create(ctx context.Context, userID uuid.UUID, title, content string) (*entity.Post, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, title, content)
	}
	return nil, domain.ErrPostNotFound // Default: failure
}

func (m *mockPostUsecase) List(ctx context.Context, page, limit int) ([]entity.Post, int, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, limit)
	}
	return nil, 0, nil // Default: empty
}

func (m *mockPostUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrPostNotFound // Default: not found
}

func (m *mockPostUsecase) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	return domain.ErrPostNotFound // Default: not found
}

// setUserID simulates the auth middleware by injecting the user id into the context.
func setUserID(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, id)
		c.Next()
	}
}

func testPost(owner uuid.UUID) *entity.Post {
	return &entity.Post{
		ID:        uuid.New(),
		UserID:    owner,
		Title:     "hello",
		Content:   "world",
		CreatedAt: time.Now(),
	}
}

func TestPostHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ownerID := uuid.New()
	created := testPost(ownerID)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockCreateFunc func(ctx context.Context, userID uuid.UUID, title, content string) (*entity.Post, error)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "success: post creation",
			requestBody: gin.H{"title": "hello", "content": "world"},
			mockCreateFunc: func(ctx context.Context, userID uuid.UUID, title, content string) (*entity.Post, error) {
				assert.Equal(t, ownerID, userID)
				return created, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: missing title",
			requestBody:    gin.H{"content": "world"},
			mockCreateFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Key: 'CreatePostReq.Title' Error:Field validation for 'Title' failed on the 'required' tag",
		},
		{
			name:           "failure: title too long",
			requestBody:    gin.H{"title": strings.Repeat("x", 201), "content": "world"},
			mockCreateFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Key: 'CreatePostReq.Title' Error:Field validation for 'Title' failed on the 'max' tag",
		},
		{
			name:           "failure: content too long",
			requestBody:    gin.H{"title": "hello", "content": strings.Repeat("x", 5001)},
			mockCreateFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Key: 'CreatePostReq.Content' Error:Field validation for 'Content' failed on the 'max' tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockPostUsecase{CreateFunc: tt.mockCreateFunc}
			handler := NewPostHandler(mockUC)

			router := gin.New()
			router.POST("/posts", setUserID(ownerID), handler.Create)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/posts", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))

			if tt.expectedStatus == http.StatusCreated {
				assert.Equal(t, created.ID.String(), responseBody["id"])
				assert.Equal(t, ownerID.String(), responseBody["user_id"])
				assert.Equal(t, created.Title, responseBody["title"])
			} else {
				// Error messages include Gin validation error details, so check partial match
				assert.Contains(t, responseBody["error"], tt.expectedError)
			}
		})
	}
}

func TestPostHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		query         string
		expectedPage  int
		expectedLimit int
	}{
		{"defaults", "", 1, 10},
		{"explicit page and limit", "?page=3&limit=5", 3, 5},
		{"page only", "?page=2", 2, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := []entity.Post{*testPost(uuid.New()), *testPost(uuid.New())}
			mockUC := &mockPostUsecase{
				ListFunc: func(ctx context.Context, page, limit int) ([]entity.Post, int, error) {
					assert.Equal(t, tt.expectedPage, page)
					assert.Equal(t, tt.expectedLimit, limit)
					return posts, 42, nil
				},
			}
			handler := NewPostHandler(mockUC)

			router := gin.New()
			router.GET("/posts", handler.List)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/posts"+tt.query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var responseBody struct {
				Data  []gin.H `json:"data"`
				Page  int     `json:"page"`
				Limit int     `json:"limit"`
				Total int     `json:"total"`
			}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Len(t, responseBody.Data, 2)
			assert.Equal(t, tt.expectedPage, responseBody.Page)
			assert.Equal(t, tt.expectedLimit, responseBody.Limit)
			assert.Equal(t, 42, responseBody.Total)
		})
	}
}

func TestPostHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	post := testPost(uuid.New())

	tests := []struct {
		name           string
		id             string
		mockGetFunc    func(ctx context.Context, id uuid.UUID) (*entity.Post, error)
		expectedStatus int
	}{
		{
			name: "success: post found",
			id:   post.ID.String(),
			mockGetFunc: func(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
				assert.Equal(t, post.ID, id)
				return post, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: unknown id",
			id:             uuid.New().String(),
			mockGetFunc:    nil, // Default: not found
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "failure: malformed id",
			id:             "not-a-uuid",
			mockGetFunc:    nil, // Usecase is not called
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockPostUsecase{GetFunc: tt.mockGetFunc}
			handler := NewPostHandler(mockUC)

			router := gin.New()
			router.GET("/posts/:id", handler.Get)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/posts/"+tt.id, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var responseBody gin.H
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
				assert.Equal(t, post.ID.String(), responseBody["id"])
				assert.Equal(t, post.Content, responseBody["content"])
			}
		})
	}
}

func TestPostHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	callerID := uuid.New()
	postID := uuid.New()

	tests := []struct {
		name           string
		id             string
		mockDeleteFunc func(ctx context.Context, id, userID uuid.UUID) error
		expectedStatus int
	}{
		{
			name: "success: owner deletes own post",
			id:   postID.String(),
			mockDeleteFunc: func(ctx context.Context, id, userID uuid.UUID) error {
				assert.Equal(t, postID, id)
				assert.Equal(t, callerID, userID)
				return nil
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "failure: not the owner",
			id:   postID.String(),
			mockDeleteFunc: func(ctx context.Context, id, userID uuid.UUID) error {
				return domain.ErrPostForbidden
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "failure: unknown id",
			id:             uuid.New().String(),
			mockDeleteFunc: nil, // Default: not found
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "failure: malformed id",
			id:             "not-a-uuid",
			mockDeleteFunc: nil, // Usecase is not called
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockPostUsecase{DeleteFunc: tt.mockDeleteFunc}
			handler := NewPostHandler(mockUC)

			router := gin.New()
			router.DELETE("/posts/:id", setUserID(callerID), handler.Delete)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/posts/"+tt.id, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

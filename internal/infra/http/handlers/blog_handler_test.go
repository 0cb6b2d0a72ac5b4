package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hotelmol/leads-api/internal/entity"
)

// MockBlogRepo
type MockBlogRepo struct {
	mock.Mock
}

func (m *MockBlogRepo) Create(ctx context.Context, post *entity.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockBlogRepo) Upsert(ctx context.Context, post *entity.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockBlogRepo) FindAll(ctx context.Context) ([]entity.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.BlogPost), args.Error(1)
}

func (m *MockBlogRepo) FindPublished(ctx context.Context) ([]entity.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.BlogPost), args.Error(1)
}

func (m *MockBlogRepo) FindByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BlogPost), args.Error(1)
}

func (m *MockBlogRepo) FindPublishedBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BlogPost), args.Error(1)
}

// MockSettingRepo
type MockSettingRepo struct {
	mock.Mock
}

func (m *MockSettingRepo) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func blogRouter(handler *BlogHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/posts", handler.ListPublished)
	r.Get("/api/posts/{slug}", handler.GetBySlug)
	return r
}

func TestListPublishedPosts(t *testing.T) {
	posts := new(MockBlogRepo)
	settings := new(MockSettingRepo)
	settings.On("Get", mock.Anything, "blog_enabled").Return("", entity.ErrNotFound)

	published := *entity.NewBlogPost("Welcome", "welcome-to-hotelmol", "# Welcome")
	published.Published = true
	posts.On("FindPublished", mock.Anything).Return([]entity.BlogPost{published}, nil)

	router := blogRouter(NewBlogHandler(posts, settings))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/posts", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response postListResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.Len(t, response.Posts, 1)
	assert.Equal(t, "welcome-to-hotelmol", response.Posts[0].Slug)
}

func TestListPostsRespectsKillSwitch(t *testing.T) {
	posts := new(MockBlogRepo)
	settings := new(MockSettingRepo)
	settings.On("Get", mock.Anything, "blog_enabled").Return("false", nil)

	router := blogRouter(NewBlogHandler(posts, settings))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/posts", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response postListResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.Empty(t, response.Posts)
	posts.AssertNotCalled(t, "FindPublished", mock.Anything)
}

func TestGetPostBySlug(t *testing.T) {
	posts := new(MockBlogRepo)
	settings := new(MockSettingRepo)

	post := entity.NewBlogPost("Welcome", "welcome-to-hotelmol", "# Welcome")
	post.Published = true
	posts.On("FindPublishedBySlug", mock.Anything, "welcome-to-hotelmol").Return(post, nil)

	router := blogRouter(NewBlogHandler(posts, settings))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/posts/welcome-to-hotelmol", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response postResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "Welcome", response.Post.Title)
}

// Drafts answer identically to slugs that never existed, no matter how
// often they are requested.
func TestGetUnpublishedPostIsNotFound(t *testing.T) {
	posts := new(MockBlogRepo)
	settings := new(MockSettingRepo)
	posts.On("FindPublishedBySlug", mock.Anything, "draft-post").Return(nil, entity.ErrNotFound)

	router := blogRouter(NewBlogHandler(posts, settings))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/posts/draft-post", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)

		var response APIResponse
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.False(t, response.Success)
		assert.Equal(t, "Post not found", response.Message)
	}
}

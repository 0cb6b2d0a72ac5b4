package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BlogPost is editorial content. Posts are written out of band (seed tool
// or editorial tooling); the web application only reads them, and public
// reads only ever see published posts.
type BlogPost struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content"`
	Excerpt         *string    `json:"excerpt"`
	CoverImage      *string    `json:"coverImage"`
	Keywords        []string   `json:"keywords"`
	MetaTitle       *string    `json:"metaTitle"`
	MetaDescription *string    `json:"metaDescription"`
	Published       bool       `json:"published"`
	PublishedAt     *time.Time `json:"publishedAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func NewBlogPost(title, slug, content string) *BlogPost {
	now := time.Now().UTC()
	return &BlogPost{
		ID:        uuid.New().String(),
		Title:     title,
		Slug:      slug,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PostSummary is a generated digest of an article body, produced on
// demand for the editorial UI. It is never persisted.
type PostSummary struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
}

type BlogRepositoryInterface interface {
	Create(ctx context.Context, post *BlogPost) error
	// Upsert inserts the post, leaving any existing row with the same
	// slug untouched. Used by the seed tool.
	Upsert(ctx context.Context, post *BlogPost) error
	FindAll(ctx context.Context) ([]BlogPost, error)
	FindPublished(ctx context.Context) ([]BlogPost, error)
	FindByID(ctx context.Context, id string) (*BlogPost, error)
	// FindPublishedBySlug returns ErrNotFound for unpublished posts so
	// drafts are indistinguishable from absent ones.
	FindPublishedBySlug(ctx context.Context, slug string) (*BlogPost, error)
}

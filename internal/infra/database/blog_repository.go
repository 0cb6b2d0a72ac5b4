package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"

	"github.com/hotelmol/leads-api/internal/entity"
)

type BlogRepository struct {
	DB *sql.DB
}

func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{DB: db}
}

const blogColumns = `
	id, title, slug, content, excerpt, cover_image, keywords,
	meta_title, meta_description, published, published_at, created_at, updated_at
`

func (r *BlogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	return r.insert(ctx, post, "")
}

func (r *BlogRepository) Upsert(ctx context.Context, post *entity.BlogPost) error {
	return r.insert(ctx, post, "ON CONFLICT (slug) DO NOTHING")
}

func (r *BlogRepository) insert(ctx context.Context, post *entity.BlogPost, conflictClause string) error {
	query := `
		INSERT INTO blog_posts (` + blogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	` + conflictClause

	_, err := r.DB.ExecContext(ctx, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Content,
		post.Excerpt,
		post.CoverImage,
		pq.Array(post.Keywords),
		post.MetaTitle,
		post.MetaDescription,
		post.Published,
		post.PublishedAt,
		post.CreatedAt,
		post.UpdatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrDuplicateSlug
		}
		log.Printf("[db] blog post insert failed: %v", err)
		return err
	}

	return nil
}

func (r *BlogRepository) FindAll(ctx context.Context) ([]entity.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts ORDER BY created_at DESC`
	return r.queryPosts(ctx, query)
}

func (r *BlogRepository) FindPublished(ctx context.Context) ([]entity.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE published = true ORDER BY published_at DESC`
	return r.queryPosts(ctx, query)
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE id = $1`

	var post entity.BlogPost
	err := scanPost(r.DB.QueryRowContext(ctx, query, id).Scan, &post)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// FindPublishedBySlug filters on published in the query itself, so drafts
// answer exactly like rows that do not exist.
func (r *BlogRepository) FindPublishedBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE slug = $1 AND published = true`

	var post entity.BlogPost
	err := scanPost(r.DB.QueryRowContext(ctx, query, slug).Scan, &post)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *BlogRepository) queryPosts(ctx context.Context, query string) ([]entity.BlogPost, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []entity.BlogPost
	for rows.Next() {
		var post entity.BlogPost
		if err := scanPost(rows.Scan, &post); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

func scanPost(scan func(dest ...any) error, post *entity.BlogPost) error {
	return scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Content,
		&post.Excerpt,
		&post.CoverImage,
		pq.Array(&post.Keywords),
		&post.MetaTitle,
		&post.MetaDescription,
		&post.Published,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
}

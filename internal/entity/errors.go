package entity

import "errors"

var (
	// ErrNotFound is the explicit absent signal for point lookups.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateSlug maps the unique constraint on blog_posts.slug.
	ErrDuplicateSlug = errors.New("blog post slug already exists")

	// ErrNotSupported is returned by ephemeral storage for entities it
	// intentionally does not persist.
	ErrNotSupported = errors.New("operation not supported by this storage backend")
)

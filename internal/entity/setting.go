package entity

import "context"

// SiteSetting is a flat key/value runtime flag, e.g. "blog_enabled".
type SiteSetting struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

type SiteSettingRepositoryInterface interface {
	// Get returns ErrNotFound when the key has never been set.
	Get(ctx context.Context, key string) (string, error)
}

package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hotelmol/leads-api/internal/entity"
)

type SiteSettingRepository struct {
	DB *sql.DB
}

func NewSiteSettingRepository(db *sql.DB) *SiteSettingRepository {
	return &SiteSettingRepository{DB: db}
}

func (r *SiteSettingRepository) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM site_settings WHERE key = $1`

	var value string
	err := r.DB.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", entity.ErrNotFound
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

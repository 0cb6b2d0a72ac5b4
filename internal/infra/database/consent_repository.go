package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"

	"github.com/hotelmol/leads-api/internal/entity"
)

type CookieConsentRepository struct {
	DB *sql.DB
}

func NewCookieConsentRepository(db *sql.DB) *CookieConsentRepository {
	return &CookieConsentRepository{DB: db}
}

func (r *CookieConsentRepository) Create(ctx context.Context, consent *entity.CookieConsent) error {
	categories, err := json.Marshal(consent.Categories)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO cookie_consents (id, consented_at, language, categories, ip_hash, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = r.DB.ExecContext(ctx, query,
		consent.ID,
		consent.ConsentedAt,
		consent.Language,
		categories,
		consent.IPHash,
		consent.UserAgent,
	)

	if err != nil {
		log.Printf("[db] cookie consent insert failed: %v", err)
		return err
	}

	return nil
}

func (r *CookieConsentRepository) FindAll(ctx context.Context) ([]entity.CookieConsent, error) {
	query := `
		SELECT id, consented_at, language, categories, ip_hash, user_agent
		FROM cookie_consents
		ORDER BY consented_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var consents []entity.CookieConsent
	for rows.Next() {
		var consent entity.CookieConsent
		var categories []byte

		err := rows.Scan(
			&consent.ID,
			&consent.ConsentedAt,
			&consent.Language,
			&categories,
			&consent.IPHash,
			&consent.UserAgent,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(categories, &consent.Categories); err != nil {
			return nil, err
		}

		consents = append(consents, consent)
	}

	return consents, rows.Err()
}

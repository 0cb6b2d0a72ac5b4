package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/hotelmol/leads-api/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `
	id, type, name, email, phone, role, property, property_size, comment,
	data_processing, marketing, language,
	utm_source, utm_medium, utm_campaign, referrer,
	mailchimp_status, created_at
`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.LeadSubmission) error {
	query := `
		INSERT INTO lead_submissions (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Type,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Role,
		lead.Property,
		lead.PropertySize,
		lead.Comment,
		lead.DataProcessing,
		lead.Marketing,
		lead.Language,
		lead.UTMSource,
		lead.UTMMedium,
		lead.UTMCampaign,
		lead.Referrer,
		lead.MailchimpStatus,
		lead.CreatedAt,
	)

	if err != nil {
		log.Printf("[db] lead insert failed: %v", err)
		return err
	}

	return nil
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]entity.LeadSubmission, error) {
	query := `SELECT ` + leadColumns + ` FROM lead_submissions ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []entity.LeadSubmission
	for rows.Next() {
		var lead entity.LeadSubmission
		if err := scanLead(rows.Scan, &lead); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.LeadSubmission, error) {
	query := `SELECT ` + leadColumns + ` FROM lead_submissions WHERE id = $1`

	var lead entity.LeadSubmission
	err := scanLead(r.DB.QueryRowContext(ctx, query, id).Scan, &lead)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &lead, nil
}

func scanLead(scan func(dest ...any) error, lead *entity.LeadSubmission) error {
	return scan(
		&lead.ID,
		&lead.Type,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Role,
		&lead.Property,
		&lead.PropertySize,
		&lead.Comment,
		&lead.DataProcessing,
		&lead.Marketing,
		&lead.Language,
		&lead.UTMSource,
		&lead.UTMMedium,
		&lead.UTMCampaign,
		&lead.Referrer,
		&lead.MailchimpStatus,
		&lead.CreatedAt,
	)
}

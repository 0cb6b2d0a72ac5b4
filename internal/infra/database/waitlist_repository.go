package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/hotelmol/leads-api/internal/entity"
)

type WaitlistRepository struct {
	DB *sql.DB
}

func NewWaitlistRepository(db *sql.DB) *WaitlistRepository {
	return &WaitlistRepository{DB: db}
}

func (r *WaitlistRepository) Create(ctx context.Context, waitlist *entity.WaitlistSubmission) error {
	query := `
		INSERT INTO waitlist_submissions (id, name, phone, budget, hotel_name, language, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		waitlist.ID,
		waitlist.Name,
		waitlist.Phone,
		waitlist.Budget,
		waitlist.HotelName,
		waitlist.Language,
		waitlist.CreatedAt,
	)

	if err != nil {
		log.Printf("[db] waitlist insert failed: %v", err)
		return err
	}

	return nil
}

func (r *WaitlistRepository) FindAll(ctx context.Context) ([]entity.WaitlistSubmission, error) {
	query := `
		SELECT id, name, phone, budget, hotel_name, language, created_at
		FROM waitlist_submissions
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []entity.WaitlistSubmission
	for rows.Next() {
		var submission entity.WaitlistSubmission
		err := rows.Scan(
			&submission.ID,
			&submission.Name,
			&submission.Phone,
			&submission.Budget,
			&submission.HotelName,
			&submission.Language,
			&submission.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, submission)
	}

	return submissions, rows.Err()
}

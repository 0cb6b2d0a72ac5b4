package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// WaitlistSubmission is a signup from the pricing waitlist form.
// Budget is one of the form's fixed bands (upTo100, upTo500, upTo1000,
// over1000); only presence is enforced, the bands are owned by the frontend.
type WaitlistSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Budget    string    `json:"budget"`
	HotelName *string   `json:"hotelName"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewWaitlistSubmission() *WaitlistSubmission {
	return &WaitlistSubmission{
		ID:        uuid.New().String(),
		Language:  DefaultLanguage,
		CreatedAt: time.Now().UTC(),
	}
}

type WaitlistRepositoryInterface interface {
	Create(ctx context.Context, waitlist *WaitlistSubmission) error
	FindAll(ctx context.Context) ([]WaitlistSubmission, error)
}

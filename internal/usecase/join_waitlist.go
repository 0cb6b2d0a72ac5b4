package usecase

import (
	"context"

	"github.com/hotelmol/leads-api/internal/entity"
)

// JoinWaitlistUseCase persists waitlist signups. There is no webhook for
// the waitlist; the record itself is the whole integration.
type JoinWaitlistUseCase struct {
	Waitlist entity.WaitlistRepositoryInterface
}

func NewJoinWaitlistUseCase(waitlist entity.WaitlistRepositoryInterface) *JoinWaitlistUseCase {
	return &JoinWaitlistUseCase{Waitlist: waitlist}
}

func (uc *JoinWaitlistUseCase) Execute(ctx context.Context, input WaitlistInput) (*entity.WaitlistSubmission, error) {
	if errs := ValidateWaitlist(input); len(errs) > 0 {
		return nil, &InvalidInputError{Fields: errs}
	}

	waitlist := entity.NewWaitlistSubmission()
	waitlist.Name = input.Name
	waitlist.Phone = input.Phone
	waitlist.Budget = input.Budget
	waitlist.HotelName = nullable(input.HotelName)
	waitlist.Language = languageOrDefault(input.Language)

	if err := uc.Waitlist.Create(ctx, waitlist); err != nil {
		return nil, &StorageError{Op: "create waitlist submission", Err: err}
	}

	return waitlist, nil
}

package usecase

import (
	"context"
	"strings"

	"github.com/hotelmol/leads-api/internal/entity"
)

// SummarizePostUseCase generates a digest of an article body for the
// editorial UI. Nothing is persisted; the result goes straight back to
// the caller.
type SummarizePostUseCase struct {
	Summarizer SummarizerInterface
}

func NewSummarizePostUseCase(summarizer SummarizerInterface) *SummarizePostUseCase {
	return &SummarizePostUseCase{Summarizer: summarizer}
}

func (uc *SummarizePostUseCase) Execute(ctx context.Context, input SummarizeInput) (*entity.PostSummary, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, &InvalidInputError{Fields: []ValidationError{
			{Field: "content", Message: "Content is required"},
		}}
	}

	language := input.Language
	if language == "" {
		language = entity.DefaultLanguage
	}

	return uc.Summarizer.Summarize(ctx, input.Content, language)
}

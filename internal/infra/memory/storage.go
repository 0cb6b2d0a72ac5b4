package memory

import (
	"context"
	"sync"

	"github.com/hotelmol/leads-api/internal/entity"
)

// Storage is the ephemeral fallback used when no DATABASE_URL is
// configured. It only really persists leads; everything else either
// fails loudly or reads back empty. Data does not survive a restart,
// which is acceptable because deployed environments always run on
// Postgres.
type Storage struct {
	mu    sync.RWMutex
	leads map[string]entity.LeadSubmission
	order []string
}

func NewStorage() *Storage {
	return &Storage{
		leads: make(map[string]entity.LeadSubmission),
	}
}

func (s *Storage) Create(ctx context.Context, lead *entity.LeadSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leads[lead.ID] = *lead
	s.order = append(s.order, lead.ID)
	return nil
}

func (s *Storage) FindAll(ctx context.Context) ([]entity.LeadSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Most recent first, same ordering contract as the database.
	leads := make([]entity.LeadSubmission, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		leads = append(leads, s.leads[s.order[i]])
	}
	return leads, nil
}

func (s *Storage) FindByID(ctx context.Context, id string) (*entity.LeadSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lead, ok := s.leads[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &lead, nil
}

// ConsentStore fails writes loudly: consent records are a compliance log
// and must never silently land in a store that forgets them.
type ConsentStore struct{}

func (ConsentStore) Create(ctx context.Context, consent *entity.CookieConsent) error {
	return entity.ErrNotSupported
}

func (ConsentStore) FindAll(ctx context.Context) ([]entity.CookieConsent, error) {
	return []entity.CookieConsent{}, nil
}

// WaitlistStore mirrors ConsentStore.
type WaitlistStore struct{}

func (WaitlistStore) Create(ctx context.Context, waitlist *entity.WaitlistSubmission) error {
	return entity.ErrNotSupported
}

func (WaitlistStore) FindAll(ctx context.Context) ([]entity.WaitlistSubmission, error) {
	return []entity.WaitlistSubmission{}, nil
}

// BlogStore has no content without a database; reads come back empty.
type BlogStore struct{}

func (BlogStore) Create(ctx context.Context, post *entity.BlogPost) error {
	return entity.ErrNotSupported
}

func (BlogStore) Upsert(ctx context.Context, post *entity.BlogPost) error {
	return entity.ErrNotSupported
}

func (BlogStore) FindAll(ctx context.Context) ([]entity.BlogPost, error) {
	return []entity.BlogPost{}, nil
}

func (BlogStore) FindPublished(ctx context.Context) ([]entity.BlogPost, error) {
	return []entity.BlogPost{}, nil
}

func (BlogStore) FindByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	return nil, entity.ErrNotFound
}

func (BlogStore) FindPublishedBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	return nil, entity.ErrNotFound
}

// SettingStore answers every key as unset.
type SettingStore struct{}

func (SettingStore) Get(ctx context.Context, key string) (string, error) {
	return "", entity.ErrNotFound
}

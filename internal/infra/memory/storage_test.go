package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hotelmol/leads-api/internal/entity"
)

func TestStorageCreateAndFindByID(t *testing.T) {
	s := NewStorage()
	ctx := context.Background()

	lead := entity.NewLeadSubmission(entity.LeadTypeContact)
	assert.NoError(t, s.Create(ctx, lead))

	found, err := s.FindByID(ctx, lead.ID)
	assert.NoError(t, err)
	assert.Equal(t, lead.ID, found.ID)
	assert.Equal(t, entity.LeadTypeContact, found.Type)
}

func TestStorageFindByIDNotFound(t *testing.T) {
	s := NewStorage()

	found, err := s.FindByID(context.Background(), "missing")
	assert.Nil(t, found)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestStorageFindAllMostRecentFirst(t *testing.T) {
	s := NewStorage()
	ctx := context.Background()

	first := entity.NewLeadSubmission(entity.LeadTypeROI)
	second := entity.NewLeadSubmission(entity.LeadTypeDemo)
	assert.NoError(t, s.Create(ctx, first))
	assert.NoError(t, s.Create(ctx, second))

	leads, err := s.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, leads, 2)
	assert.Equal(t, second.ID, leads[0].ID)
	assert.Equal(t, first.ID, leads[1].ID)
}

func TestEphemeralStoresFailLoudlyForDurableEntities(t *testing.T) {
	ctx := context.Background()

	err := ConsentStore{}.Create(ctx, entity.NewCookieConsent())
	assert.ErrorIs(t, err, entity.ErrNotSupported)

	err = WaitlistStore{}.Create(ctx, entity.NewWaitlistSubmission())
	assert.ErrorIs(t, err, entity.ErrNotSupported)

	err = BlogStore{}.Create(ctx, entity.NewBlogPost("t", "s", "c"))
	assert.ErrorIs(t, err, entity.ErrNotSupported)
}

func TestEphemeralReadsComeBackEmpty(t *testing.T) {
	ctx := context.Background()

	consents, err := ConsentStore{}.FindAll(ctx)
	assert.NoError(t, err)
	assert.Empty(t, consents)

	posts, err := BlogStore{}.FindPublished(ctx)
	assert.NoError(t, err)
	assert.Empty(t, posts)

	_, err = BlogStore{}.FindPublishedBySlug(ctx, "welcome-to-hotelmol")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = SettingStore{}.Get(ctx, "blog_enabled")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

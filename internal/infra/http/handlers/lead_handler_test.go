package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hotelmol/leads-api/internal/entity"
	"github.com/hotelmol/leads-api/internal/infra/integration/n8n"
	"github.com/hotelmol/leads-api/internal/infra/memory"
	"github.com/hotelmol/leads-api/internal/usecase"
)

// MockLeadRepo
type MockLeadRepo struct {
	mock.Mock
}

func (m *MockLeadRepo) Create(ctx context.Context, lead *entity.LeadSubmission) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepo) FindAll(ctx context.Context) ([]entity.LeadSubmission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.LeadSubmission), args.Error(1)
}

func (m *MockLeadRepo) FindByID(ctx context.Context, id string) (*entity.LeadSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LeadSubmission), args.Error(1)
}

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	w := httptest.NewRecorder()
	handlerFunc(w, req)
	return w
}

// The webhook URL points at an unreachable host on purpose: delivery
// failure must never affect the recorded success of the submission.
func TestSubmitContactRoundTripWithDeadWebhook(t *testing.T) {
	store := memory.NewStorage()
	notifier := n8n.NewClient("http://127.0.0.1:1", "")
	handler := NewLeadHandler(usecase.NewSubmitLeadUseCase(store, notifier))

	w := postJSON(t, handler.SubmitContact, "/api/leads/contact", map[string]any{
		"name":           "Jane",
		"email":          "jane@x.com",
		"dataProcessing": true,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response APIResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.NotEmpty(t, response.LeadID)

	// The record is retrievable by the returned id with the full shape.
	lead, err := store.FindByID(context.Background(), response.LeadID)
	assert.NoError(t, err)
	assert.Equal(t, "contact", lead.Type)
	assert.Equal(t, "Jane", *lead.Name)
	assert.Equal(t, "jane@x.com", *lead.Email)
	assert.Nil(t, lead.Phone)
	assert.False(t, lead.Marketing)
}

func TestSubmitROIRejectsInvalidPayload(t *testing.T) {
	store := memory.NewStorage()
	handler := NewLeadHandler(usecase.NewSubmitLeadUseCase(store, nil))

	w := postJSON(t, handler.SubmitROI, "/api/leads/roi", map[string]any{
		"name":           "Jane",
		"phone":          "+111",
		"propertySize":   "20-50",
		"dataProcessing": false,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response APIResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.False(t, response.Success)
	assert.NotEmpty(t, response.Errors)

	leads, err := store.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, leads)
}

func TestSubmitLeadRejectsMalformedJSON(t *testing.T) {
	handler := NewLeadHandler(usecase.NewSubmitLeadUseCase(memory.NewStorage(), nil))

	req := httptest.NewRequest("POST", "/api/leads/demo", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	handler.SubmitDemo(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitIntegrationWithPhoneOnly(t *testing.T) {
	store := memory.NewStorage()
	handler := NewLeadHandler(usecase.NewSubmitLeadUseCase(store, nil))

	w := postJSON(t, handler.SubmitIntegration, "/api/leads/integration", map[string]any{
		"phone": "+111",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response APIResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))

	lead, err := store.FindByID(context.Background(), response.LeadID)
	assert.NoError(t, err)
	assert.Nil(t, lead.Name)
	assert.True(t, lead.DataProcessing)
}

func TestSubmitDemoStorageFailureIsGeneric(t *testing.T) {
	repo := new(MockLeadRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("pq: connection refused"))

	handler := NewLeadHandler(usecase.NewSubmitLeadUseCase(repo, nil))

	w := postJSON(t, handler.SubmitDemo, "/api/leads/demo", map[string]any{
		"name":           "Jane",
		"email":          "jane@x.com",
		"dataProcessing": true,
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response APIResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.False(t, response.Success)
	// No internal detail leaks to the client.
	assert.Equal(t, "Failed to submit demo request", response.Message)
}

func TestLeadEndpointsAreRateLimited(t *testing.T) {
	handler := NewLeadHandler(usecase.NewSubmitLeadUseCase(memory.NewStorage(), nil))

	body := map[string]any{"phone": "+111"}
	var last *httptest.ResponseRecorder
	for i := 0; i < 11; i++ {
		last = postJSON(t, handler.SubmitIntegration, "/api/leads/integration", body)
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
}

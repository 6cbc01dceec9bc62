package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/chateaubevvy/bevvy-leads/internal/entity"
	"github.com/chateaubevvy/bevvy-leads/internal/infra/integration/ghl"
	"github.com/chateaubevvy/bevvy-leads/internal/usecase"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

type MockCRMForwarder struct {
	mock.Mock
	called chan *entity.Lead
}

func NewMockCRMForwarder() *MockCRMForwarder {
	return &MockCRMForwarder{called: make(chan *entity.Lead, 1)}
}

func (m *MockCRMForwarder) ForwardLead(ctx context.Context, lead *entity.Lead) ghl.Result {
	args := m.Called(ctx, lead)
	m.called <- lead
	return args.Get(0).(ghl.Result)
}

func newLeadHandler(repo entity.LeadRepositoryInterface, forwarder usecase.CRMForwarderInterface) *LeadHandler {
	return NewLeadHandler(usecase.NewCaptureLeadUseCase(repo, forwarder, nil))
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/leads/test", bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestWineClubSignupEndToEnd(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockForwarder := NewMockCRMForwarder()
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockForwarder.On("ForwardLead", mock.Anything, mock.Anything).Return(ghl.Result{Outcome: ghl.OutcomeDelivered, Status: 200})

	handler := newLeadHandler(mockRepo, mockForwarder)

	w := postJSON(t, handler.HandleWineClubSignup,
		`{"first_name":"Ana","last_name":"Ruiz","email":"ana@x.com","membership_tier":"connoisseur"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var response CaptureLeadResponse
	json.NewDecoder(w.Body).Decode(&response)
	assert.True(t, response.Success)

	// The persisted lead carries the tier; the CRM payload places it in
	// customField with the right tags.
	stored := mockRepo.Calls[0].Arguments.Get(1).(*entity.Lead)
	assert.Equal(t, entity.SourceWineClubSignup, stored.Source)
	assert.Equal(t, "connoisseur", stored.MembershipTier)

	select {
	case forwarded := <-mockForwarder.called:
		payload := ghl.BuildPayload(forwarded)
		assert.Equal(t, "connoisseur", payload.CustomField["membership_tier"])
		assert.Equal(t, []string{"website-lead", "wine_club_signup"}, payload.Tags)
	case <-time.After(2 * time.Second):
		t.Fatal("forwarder was never invoked")
	}
}

func TestEventInquiryMissingEventType(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockForwarder := NewMockCRMForwarder()

	handler := newLeadHandler(mockRepo, mockForwarder)

	w := postJSON(t, handler.HandleEventInquiry, `{"name":"Sam Lee","email":"sam@x.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response CaptureLeadResponse
	json.NewDecoder(w.Body).Decode(&response)
	assert.False(t, response.Success)
	assert.Contains(t, response.Error, "event_type")

	mockRepo.AssertNotCalled(t, "Create")
	mockForwarder.AssertNotCalled(t, "ForwardLead")
}

func TestCaptureLeadInvalidJSON(t *testing.T) {
	handler := newLeadHandler(new(MockLeadRepository), NewMockCRMForwarder())

	w := postJSON(t, handler.HandleWaitlist, `{"email":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response CaptureLeadResponse
	json.NewDecoder(w.Body).Decode(&response)
	assert.False(t, response.Success)
	assert.Equal(t, "Invalid JSON", response.Error)
}

func TestCaptureLeadPersistenceFailureIs500(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockForwarder := NewMockCRMForwarder()
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	handler := newLeadHandler(mockRepo, mockForwarder)

	w := postJSON(t, handler.HandleWaitlist, `{"email":"jane@x.com"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response CaptureLeadResponse
	json.NewDecoder(w.Body).Decode(&response)
	assert.False(t, response.Success)
	mockForwarder.AssertNotCalled(t, "ForwardLead")
}

func TestCaptureLeadRateLimited(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockForwarder := NewMockCRMForwarder()
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockForwarder.On("ForwardLead", mock.Anything, mock.Anything).Return(ghl.Result{Outcome: ghl.OutcomeDelivered, Status: 200})

	handler := newLeadHandler(mockRepo, mockForwarder)
	// Buffered channel would fill up; drain forwarder calls in background.
	go func() {
		for range mockForwarder.called {
		}
	}()

	var lastCode int
	for i := 0; i < 11; i++ {
		req := httptest.NewRequest("POST", "/leads/waitlist",
			bytes.NewReader([]byte(fmt.Sprintf(`{"email":"jane+%d@x.com"}`, i))))
		req.Header.Set("X-Forwarded-For", "10.0.0.9")
		w := httptest.NewRecorder()
		handler.HandleWaitlist(w, req)
		lastCode = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}

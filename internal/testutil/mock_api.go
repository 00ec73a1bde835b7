// Package testutil provides testing utilities for the cloud client core.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
)

// ListPage is one page of the mock list endpoint's wire format. An
// empty NextPageToken marks the last page.
type ListPage struct {
	Items         []string `json:"items"`
	NextPageToken string   `json:"next_page_token"`
}

// OperationStatus is the mock operation endpoint's wire format.
type OperationStatus struct {
	Done   bool   `json:"done"`
	Result string `json:"result,omitempty"`
}

// MockAPI is a configurable mock cloud API server. It serves a
// token-paged list endpoint at /v1/items and a long-running operation
// status endpoint at /v1/operations/{name}.
type MockAPI struct {
	server *httptest.Server
	mu     sync.Mutex

	pages      map[string]ListPage
	failTokens map[string]bool

	opPollsUntilDone int
	opResult         string
	opPolls          int

	// Tracking
	RequestCount int
	Tokens       []string
}

// NewMockAPI creates a new mock API server.
func NewMockAPI() *MockAPI {
	mock := &MockAPI{
		pages:      make(map[string]ListPage),
		failTokens: make(map[string]bool),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/items", mock.handleList)
	mux.HandleFunc("/v1/operations/", mock.handleOperation)
	mock.server = httptest.NewServer(mux)

	return mock
}

// URL returns the mock server URL.
func (m *MockAPI) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockAPI) Close() {
	m.server.Close()
}

// AddPage registers the page served when the given pageToken is received.
// Use an empty token for the first page of a from-the-beginning listing.
func (m *MockAPI) AddPage(token string, page ListPage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[token] = page
}

// FailOn makes the list endpoint answer 500 for the given pageToken.
func (m *MockAPI) FailOn(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failTokens[token] = true
}

// SetOperation configures the operation endpoint to report done with
// the given result after pollsUntilDone status requests.
func (m *MockAPI) SetOperation(pollsUntilDone int, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opPollsUntilDone = pollsUntilDone
	m.opResult = result
	m.opPolls = 0
}

// Reset clears tracking counters and operation poll progress.
func (m *MockAPI) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.Tokens = nil
	m.opPolls = 0
}

func (m *MockAPI) handleList(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("pageToken")

	m.mu.Lock()
	m.RequestCount++
	m.Tokens = append(m.Tokens, token)
	fail := m.failTokens[token]
	page, ok := m.pages[token]
	m.mu.Unlock()

	if fail {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, fmt.Sprintf("unknown page token %q", token), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(page)
}

func (m *MockAPI) handleOperation(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.RequestCount++
	m.opPolls++
	status := OperationStatus{Done: m.opPolls >= m.opPollsUntilDone}
	if status.Done {
		status.Result = m.opResult
	}
	m.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(status)
}

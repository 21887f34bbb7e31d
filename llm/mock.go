package llm

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
)

// MockResponse is one canned answer for the mock provider.
type MockResponse struct {
	Content json.RawMessage
	Err     error
}

// MockProvider returns canned responses in FIFO order and records every
// request. It also streams, chunking the canned content word by word, so
// the chat path is testable end to end.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

func (m *MockProvider) Complete(_ context.Context, req Request) (*Response, error) {
	resp, err := m.next(req)
	if err != nil {
		return nil, err
	}
	if err := validateAgainstSchema(req.Schema, resp.Content); err != nil {
		return nil, err
	}
	return &Response{Content: resp.Content, Model: "mock"}, nil
}

func (m *MockProvider) Stream(_ context.Context, req Request, emit func(delta string) error) error {
	resp, err := m.next(req)
	if err != nil {
		return err
	}
	words := strings.SplitAfter(string(resp.Content), " ")
	for _, w := range words {
		if w == "" {
			continue
		}
		if err := emit(w); err != nil {
			return err
		}
	}
	return nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount reports how many requests the mock has served.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func (m *MockProvider) next(req Request) (MockResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if len(m.responses) == 0 {
		return MockResponse{}, &ErrUnavailable{}
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	if resp.Err != nil {
		return MockResponse{}, resp.Err
	}
	return resp, nil
}

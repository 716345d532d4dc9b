package coach

import (
	"context"
	"sync"
)

// MockCompleter is a deterministic Completer for testing. It returns canned
// completions in FIFO order and records every prompt it was given.
type MockCompleter struct {
	mu      sync.Mutex
	replies []mockReply
	Prompts []string
}

type mockReply struct {
	text string
	err  error
}

func NewMockCompleter() *MockCompleter { return &MockCompleter{} }

func (m *MockCompleter) Reply(text string) *MockCompleter {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, mockReply{text: text})
	return m
}

func (m *MockCompleter) Fail(err error) *MockCompleter {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, mockReply{err: err})
	return m
}

func (m *MockCompleter) Name() string { return "mock" }

func (m *MockCompleter) Complete(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)
	if len(m.replies) == 0 {
		return "", nil
	}
	r := m.replies[0]
	m.replies = m.replies[1:]
	return r.text, r.err
}

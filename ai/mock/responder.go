package mock

import (
	"context"
	"fmt"

	"github.com/poiesic/materna/ai"
)

// MockResponder is a test double for ai.Responder.
// It allows custom behavior injection via function fields.
type MockResponder struct {
	// ReplyFunc is called by Reply if set. If nil, a deterministic
	// canned reply is returned.
	ReplyFunc func(ctx context.Context, system, user string, maxTokens int) (string, error)

	callCount int
}

var _ ai.Responder = (*MockResponder)(nil)

// NewMockResponder creates a mock responder with default behavior.
// Note: returns concrete type to allow test assertions.
func NewMockResponder() *MockResponder {
	return &MockResponder{}
}

// Reply returns a deterministic reply derived from the user prompt, or
// delegates to ReplyFunc when set.
func (m *MockResponder) Reply(ctx context.Context, system, user string, maxTokens int) (string, error) {
	m.callCount++

	if m.ReplyFunc != nil {
		return m.ReplyFunc(ctx, system, user, maxTokens)
	}

	return fmt.Sprintf("mock reply to %q", user), nil
}

// CallCount returns the number of times Reply was called.
func (m *MockResponder) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockResponder) Reset() {
	m.callCount = 0
	m.ReplyFunc = nil
}

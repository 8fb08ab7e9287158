// test/mock/clients.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/adaptivsec/vigil/api/model"
)

// MockContentReader is a mock implementation of service.ContentReader
type MockContentReader struct {
	mock.Mock
}

func (m *MockContentReader) GetMicrolearningContent(ctx context.Context, microlearningID string) (model.MicrolearningContent, error) {
	args := m.Called(ctx, microlearningID)
	var content model.MicrolearningContent
	if args.Get(0) != nil {
		content = args.Get(0).(model.MicrolearningContent)
	}
	return content, args.Error(1)
}

// MockSignedURLProvider is a mock implementation of service.SignedURLProvider
type MockSignedURLProvider struct {
	mock.Mock
}

func (m *MockSignedURLProvider) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockSignedURLProvider) GetSignedURL(ctx context.Context, agentID string) (string, error) {
	args := m.Called(ctx, agentID)
	return args.String(0), args.Error(1)
}

// MockSummarizer is a mock implementation of service.Summarizer
type MockSummarizer struct {
	mock.Mock
}

func (m *MockSummarizer) Summarize(ctx context.Context, messages []model.ConversationMessage) (*model.ConversationSummary, error) {
	args := m.Called(ctx, messages)
	var summary *model.ConversationSummary
	if args.Get(0) != nil {
		summary = args.Get(0).(*model.ConversationSummary)
	}
	return summary, args.Error(1)
}

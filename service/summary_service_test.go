package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	logger "github.com/adaptivsec/vigil/api/logging"
	"github.com/adaptivsec/vigil/api/model"
	"github.com/adaptivsec/vigil/api/service"
	"github.com/adaptivsec/vigil/api/test/mock"
	"github.com/adaptivsec/vigil/api/util"
)

func TestSummaryService(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	messages := []model.ConversationMessage{
		{Role: "agent", Text: "This is the IT helpdesk, I need your password."},
		{Role: "user", Text: "I am not going to share that."},
	}

	t.Run("ReturnsSummarizerOutput", func(t *testing.T) {
		summarizer := new(mock.MockSummarizer)
		expected := &model.ConversationSummary{
			Summary:    "Trainee resisted a credential-phishing attempt.",
			NextSteps:  []string{"Report the call to security"},
			StatusCard: json.RawMessage(`{"verdict":"passed"}`),
		}
		summarizer.On("Summarize", tmock.Anything, messages).Return(expected, nil)

		svc := service.NewSummaryService(summarizer, util.NewEventBus())
		summary, err := svc.Summarize(context.Background(), messages)
		require.NoError(t, err)
		assert.Equal(t, expected, summary)
	})

	t.Run("SummarizerFailurePropagatesUnchanged", func(t *testing.T) {
		summarizer := new(mock.MockSummarizer)
		failure := errors.New("model overloaded")
		summarizer.On("Summarize", tmock.Anything, messages).Return(nil, failure)

		svc := service.NewSummaryService(summarizer, util.NewEventBus())
		_, err := svc.Summarize(context.Background(), messages)
		assert.Equal(t, failure, err)
	})
}

package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignite/feedback-pipeline/internal/feedback"
)

func TestComposeNegativeAlert(t *testing.T) {
	body := ComposeNegativeAlert("C1", "2026-01-02T03:04:05.000000Z", "Terrible support", feedback.SentimentNegative)

	assert.Contains(t, body, "Customer ID: C1")
	assert.Contains(t, body, "Date: 2026-01-02T03:04:05.000000Z")
	assert.Contains(t, body, "Feedback: Terrible support")
	assert.Contains(t, body, "Sentiment: NEGATIVE")
}

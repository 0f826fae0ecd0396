package feedback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	rec := NewRecord("C1", "Great product")

	assert.NotEmpty(t, rec.FeedbackID)
	assert.Equal(t, "C1", rec.CustomerID)
	assert.Equal(t, "Great product", rec.Text)
	assert.Equal(t, StatusPending, rec.Status)

	// Range key must parse back as the documented layout
	_, err := time.Parse(DateFormat, rec.Date)
	require.NoError(t, err)
}

func TestNewRecordUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		rec := NewRecord("C1", "text")
		assert.False(t, seen[rec.FeedbackID], "duplicate feedback_id %s", rec.FeedbackID)
		seen[rec.FeedbackID] = true
	}
}

func TestNewRecordAnonymous(t *testing.T) {
	rec := NewRecord("", "no name given")
	assert.Equal(t, UnknownCustomer, rec.CustomerID)
}

func TestNewRecordEmptyText(t *testing.T) {
	// Intake stores empty text as-is; skipping is the listener's job
	rec := NewRecord("C2", "")
	assert.Equal(t, "", rec.Text)
	assert.Equal(t, StatusPending, rec.Status)
}

func TestSentimentValid(t *testing.T) {
	for _, s := range []Sentiment{SentimentPositive, SentimentNegative, SentimentNeutral, SentimentMixed} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Sentiment("ANGRY").Valid())
	assert.False(t, Sentiment("").Valid())
}

func TestRecordKey(t *testing.T) {
	rec := NewRecord("C1", "x")
	key := rec.Key()
	assert.Equal(t, rec.FeedbackID, key.FeedbackID)
	assert.Equal(t, rec.Date, key.Date)
}

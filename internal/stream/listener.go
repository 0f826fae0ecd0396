// Package stream consumes DynamoDB Streams batches for the feedback table
// and drives sentiment classification. It unifies what used to be two
// drifted copies of the same handler, one per legacy text-field name.
package stream

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"

	"github.com/ignite/feedback-pipeline/internal/classify"
	"github.com/ignite/feedback-pipeline/internal/feedback"
	"github.com/ignite/feedback-pipeline/internal/pkg/logger"
)

// Classifier produces a sentiment label and confidence scores for a text.
type Classifier interface {
	DetectSentiment(ctx context.Context, text string) (*classify.Result, error)
}

// RecordStore persists classification outcomes.
type RecordStore interface {
	MarkProcessed(ctx context.Context, key feedback.Key, sentiment feedback.Sentiment, scores map[string]float64) error
}

// AlertPublisher raises a notification for a negatively-classified record.
type AlertPublisher interface {
	NegativeFeedback(ctx context.Context, customerID, date, text string, sentiment feedback.Sentiment) error
}

// Listener processes change events from the feedback table. All
// collaborators are injected; the listener holds no ambient state.
type Listener struct {
	classifier Classifier
	store      RecordStore
	alerts     AlertPublisher
}

// NewListener creates a change listener. alerts may be nil when no topic is
// configured; classification still runs, only notification is disabled.
func NewListener(classifier Classifier, store RecordStore, alerts AlertPublisher) *Listener {
	return &Listener{classifier: classifier, store: store, alerts: alerts}
}

// Summary is the acknowledgment returned for one batch. Callers get counts,
// not per-event results: stream consumers are fire-and-forget.
type Summary struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
	Alerts    int `json:"alerts"`
}

// HandleBatch processes the events of one stream batch sequentially, in
// delivery order. Classifier and store failures abort the batch and
// propagate, leaving redelivery to the platform. Alert publish failures are
// logged and swallowed: the classification write is the durable outcome.
func (l *Listener) HandleBatch(ctx context.Context, event events.DynamoDBEvent) (Summary, error) {
	var summary Summary

	for _, record := range event.Records {
		if record.EventName != "INSERT" && record.EventName != "MODIFY" {
			summary.Skipped++
			continue
		}

		img, err := decodeImage(record.Change.NewImage)
		if err != nil {
			// Malformed stream entry. Missing text is a known data
			// condition and gets skipped; a missing key is not.
			if errors.Is(err, errNoText) {
				logger.Warn("no feedback text found, skipping",
					"event_id", record.EventID)
				summary.Skipped++
				continue
			}
			return summary, fmt.Errorf("decoding stream record %s: %w", record.EventID, err)
		}

		if img.status != feedback.StatusPending {
			// Already classified, or an update unrelated to intake
			logger.Debug("record not pending, skipping",
				"feedback_id", img.key.FeedbackID, "status", string(img.status))
			summary.Skipped++
			continue
		}

		result, err := l.classifier.DetectSentiment(ctx, img.text)
		if err != nil {
			return summary, fmt.Errorf("classifying feedback %s: %w", img.key.FeedbackID, err)
		}
		if !result.Sentiment.Valid() {
			return summary, fmt.Errorf("classifier returned unknown label %q for feedback %s",
				result.Sentiment, img.key.FeedbackID)
		}

		err = l.store.MarkProcessed(ctx, img.key, result.Sentiment, result.Scores)
		if errors.Is(err, feedback.ErrAlreadyProcessed) {
			// A concurrent activation won the race; its write stands and
			// it owns the notification.
			logger.Info("record processed concurrently, skipping",
				"feedback_id", img.key.FeedbackID)
			summary.Skipped++
			continue
		}
		if err != nil {
			return summary, fmt.Errorf("storing classification for feedback %s: %w", img.key.FeedbackID, err)
		}
		summary.Processed++

		logger.Info("feedback classified",
			"feedback_id", img.key.FeedbackID,
			"sentiment", string(result.Sentiment))

		if result.Sentiment == feedback.SentimentNegative && l.alerts != nil {
			if err := l.alerts.NegativeFeedback(ctx, img.customerID, img.key.Date, img.text, result.Sentiment); err != nil {
				logger.Error("alert publish failed",
					"feedback_id", img.key.FeedbackID, "error", err.Error())
			} else {
				summary.Alerts++
				logger.Info("negative feedback alert sent",
					"feedback_id", img.key.FeedbackID)
			}
		}
	}

	return summary, nil
}

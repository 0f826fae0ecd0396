package feedback

import (
	"time"

	"github.com/google/uuid"
)

// Status tracks a record through the classification pipeline.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusProcessed Status = "PROCESSED"
)

// Sentiment is the categorical label returned by the classifier.
type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNegative Sentiment = "NEGATIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
	SentimentMixed    Sentiment = "MIXED"
)

// Valid reports whether s is one of the four classifier labels.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral, SentimentMixed:
		return true
	}
	return false
}

// TextFieldAliases lists the attribute names historically used for the
// feedback body, in resolution order. The frontend form wrote
// "feedbackText" while test tooling wrote "comment"; both generations of
// items are still in the table and both must stay readable.
var TextFieldAliases = []string{"feedbackText", "comment"}

const (
	// UnknownCustomer is the sentinel customer_id for anonymous submissions.
	UnknownCustomer = "unknown"

	// SentimentPlaceholder is what the read path reports for records the
	// listener has not classified yet.
	SentimentPlaceholder = "Analyzing..."

	// DateFormat is the ISO-8601 layout of the range-key timestamp.
	DateFormat = "2006-01-02T15:04:05.000000Z"
)

// Key is the composite primary key of a feedback record. Both attributes
// are assigned at intake and never change.
type Key struct {
	FeedbackID string
	Date       string
}

// Record is a feedback item as written by intake. The classification
// attributes (sentiment, sentimentScores) are absent until the change
// listener writes them, so they are not part of this struct: intake never
// sets them and the listener writes them through an update expression.
type Record struct {
	FeedbackID string `dynamodbav:"feedback_id" json:"feedback_id"`
	Date       string `dynamodbav:"date" json:"date"`
	CustomerID string `dynamodbav:"customer_id" json:"customer_id"`
	Text       string `dynamodbav:"feedbackText" json:"comment"`
	Status     Status `dynamodbav:"status" json:"status"`
}

// NewRecord builds a PENDING record for a submission, assigning the
// composite key. Empty customer ids get the sentinel value; empty text is
// stored as-is (the listener skips it, never intake).
func NewRecord(customerID, text string) Record {
	if customerID == "" {
		customerID = UnknownCustomer
	}
	return Record{
		FeedbackID: uuid.New().String(),
		Date:       time.Now().UTC().Format(DateFormat),
		CustomerID: customerID,
		Text:       text,
		Status:     StatusPending,
	}
}

// Key returns the record's composite key.
func (r Record) Key() Key {
	return Key{FeedbackID: r.FeedbackID, Date: r.Date}
}

// NormalizedRecord is the one output shape the dashboard consumes,
// regardless of which legacy field names an item was written with.
type NormalizedRecord struct {
	FeedbackID      string `json:"feedback_id"`
	Date            string `json:"date"`
	CustomerID      string `json:"customer_id"`
	Comment         string `json:"comment"`
	Status          Status `json:"status"`
	Sentiment       string `json:"sentiment"`
	SentimentScores any    `json:"sentimentScores"`
}

package stream

import (
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"

	"github.com/ignite/feedback-pipeline/internal/feedback"
)

var errNoText = errors.New("no feedback text in after-image")

// image is the typed view of a stream record's after-image. Extraction
// fails closed: any shape mismatch becomes an explicit outcome instead of
// a dynamic-lookup surprise downstream.
type image struct {
	key        feedback.Key
	customerID string
	text       string
	status     feedback.Status
}

func decodeImage(attrs map[string]events.DynamoDBAttributeValue) (image, error) {
	var img image

	for _, alias := range feedback.TextFieldAliases {
		if text, ok := stringField(attrs, alias); ok && text != "" {
			img.text = text
			break
		}
	}
	if img.text == "" {
		return img, errNoText
	}

	id, ok := stringField(attrs, "feedback_id")
	if !ok || id == "" {
		return img, fmt.Errorf("after-image missing feedback_id")
	}
	date, ok := stringField(attrs, "date")
	if !ok || date == "" {
		return img, fmt.Errorf("after-image missing date")
	}
	img.key = feedback.Key{FeedbackID: id, Date: date}

	if customer, ok := stringField(attrs, "customer_id"); ok && customer != "" {
		img.customerID = customer
	} else {
		img.customerID = feedback.UnknownCustomer
	}

	status, _ := stringField(attrs, "status")
	img.status = feedback.Status(status)

	return img, nil
}

// stringField reads a string attribute from the after-image, reporting
// false for absent attributes and for attributes of any other type.
func stringField(attrs map[string]events.DynamoDBAttributeValue, name string) (string, bool) {
	av, ok := attrs[name]
	if !ok || av.DataType() != events.DataTypeString {
		return "", false
	}
	return av.String(), true
}

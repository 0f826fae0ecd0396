// Package alert publishes negative-feedback notifications to an SNS topic.
package alert

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/ignite/feedback-pipeline/internal/feedback"
)

const negativeAlertSubject = "Negative Feedback Alert"

// Publisher sends alerts to a fixed SNS topic. Delivery is best-effort:
// no acknowledgment from subscribers is consumed anywhere in the system.
type Publisher struct {
	sns      *sns.Client
	topicARN string
}

// NewPublisher creates a new SNS alert publisher
func NewPublisher(ctx context.Context, topicARN, region, profile string) (*Publisher, error) {
	var awsCfg aws.Config
	var err error

	if profile != "" {
		awsCfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(region),
			config.WithSharedConfigProfile(profile),
		)
	} else {
		awsCfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(region),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return NewPublisherWithAPI(sns.NewFromConfig(awsCfg), topicARN), nil
}

// NewPublisherWithAPI creates a publisher around an existing SNS client.
func NewPublisherWithAPI(api *sns.Client, topicARN string) *Publisher {
	return &Publisher{sns: api, topicARN: topicARN}
}

// NegativeFeedback publishes the alert for one negatively-classified record.
func (p *Publisher) NegativeFeedback(ctx context.Context, customerID, date, text string, sentiment feedback.Sentiment) error {
	_, err := p.sns.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Subject:  aws.String(negativeAlertSubject),
		Message:  aws.String(ComposeNegativeAlert(customerID, date, text, sentiment)),
	})
	if err != nil {
		return fmt.Errorf("publishing to SNS: %w", err)
	}
	return nil
}

// ComposeNegativeAlert renders the human-readable alert body. The layout is
// what the topic's email subscribers already expect.
func ComposeNegativeAlert(customerID, date, text string, sentiment feedback.Sentiment) string {
	return fmt.Sprintf(
		"🚨 Negative Feedback Alert 🚨\n\n"+
			"Customer ID: %s\n"+
			"Date: %s\n"+
			"Feedback: %s\n"+
			"Sentiment: %s\n",
		customerID, date, text, sentiment,
	)
}

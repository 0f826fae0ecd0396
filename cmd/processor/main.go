package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/ignite/feedback-pipeline/internal/alert"
	"github.com/ignite/feedback-pipeline/internal/classify"
	"github.com/ignite/feedback-pipeline/internal/config"
	"github.com/ignite/feedback-pipeline/internal/feedback"
	"github.com/ignite/feedback-pipeline/internal/pkg/logger"
	"github.com/ignite/feedback-pipeline/internal/stream"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := feedback.NewStore(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to create feedback store: %v", err)
	}

	classifier, err := classify.NewClient(ctx, cfg.Classify.LanguageCode, cfg.Storage.AWSRegion, cfg.Storage.GetAWSProfile())
	if err != nil {
		log.Fatalf("Failed to create Comprehend client: %v", err)
	}

	var alerts stream.AlertPublisher
	if cfg.Alert.Enabled && cfg.Alert.TopicARN != "" {
		pub, err := alert.NewPublisher(ctx, cfg.Alert.TopicARN, cfg.Storage.AWSRegion, cfg.Storage.GetAWSProfile())
		if err != nil {
			log.Fatalf("Failed to create SNS publisher: %v", err)
		}
		alerts = pub
	} else {
		logger.Warn("negative feedback alerts disabled, no SNS topic configured")
	}

	listener := stream.NewListener(classifier, store, alerts)
	lambda.Start(listener.HandleBatch)
}

package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Chekwachibuike/ecommerce/models"
	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSPublisher publishes order events to an SNS topic. It satisfies the
// services.EventPublisher interface.
type SNSPublisher struct {
	client   *sns.Client
	topicArn string
}

func NewSNSPublisher(cfg sdkaws.Config, topicArn string) *SNSPublisher {
	return &SNSPublisher{
		client:   sns.NewFromConfig(cfg),
		topicArn: topicArn,
	}
}

func (p *SNSPublisher) PublishOrderCreated(ctx context.Context, event *models.OrderCreatedEvent) error {
	if p.topicArn == "" {
		return fmt.Errorf("empty topic arn")
	}

	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := string(message)
	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: &p.topicArn,
		Message:  &msg,
	})
	if err != nil {
		return fmt.Errorf("sns publish failed for topic %s: %w", p.topicArn, err)
	}
	return nil
}

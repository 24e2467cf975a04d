// Package notify delivers operator notifications over AWS SES and SNS.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// ErrNoRecipients is returned when an e-mail has nobody to go to.
var ErrNoRecipients = errors.New("no recipients configured")

// SESAPI is the subset of the SES client used here.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SNSAPI is the subset of the SNS client used here.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// LoadAWS resolves credentials and region the standard SDK way.
func LoadAWS(ctx context.Context, region string) (aws.Config, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return aws.Config{}, fmt.Errorf("load AWS config: %w", err)
	}
	return cfg, nil
}

// Mailer sends plain-text e-mail through SES.
type Mailer struct {
	client SESAPI
	from   string
	to     []string
}

// NewMailer builds a Mailer. Empty recipients are dropped.
func NewMailer(client SESAPI, from string, to []string) *Mailer {
	cleaned := make([]string, 0, len(to))
	for _, addr := range to {
		if addr = strings.TrimSpace(addr); addr != "" {
			cleaned = append(cleaned, addr)
		}
	}
	return &Mailer{client: client, from: from, to: cleaned}
}

// NewSESMailer builds a Mailer backed by a real SES client.
func NewSESMailer(cfg aws.Config, from string, to []string) *Mailer {
	return NewMailer(ses.NewFromConfig(cfg), from, to)
}

// Send delivers one message to every configured recipient.
func (m *Mailer) Send(ctx context.Context, subject, body string) error {
	if len(m.to) == 0 {
		return ErrNoRecipients
	}
	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: m.to,
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(m.from),
	})
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	return nil
}

// Publisher posts messages to one SNS topic.
type Publisher struct {
	client   SNSAPI
	topicARN string
}

// NewPublisher builds a Publisher for topicARN.
func NewPublisher(client SNSAPI, topicARN string) *Publisher {
	return &Publisher{client: client, topicARN: topicARN}
}

// NewSNSPublisher builds a Publisher backed by a real SNS client.
func NewSNSPublisher(cfg aws.Config, topicARN string) *Publisher {
	return NewPublisher(sns.NewFromConfig(cfg), topicARN)
}

// Publish sends message with an optional subject.
func (p *Publisher) Publish(ctx context.Context, subject, message string) error {
	input := &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(message),
	}
	if subject != "" {
		// SNS caps subjects at 100 characters.
		if len(subject) > 100 {
			subject = subject[:100]
		}
		input.Subject = aws.String(subject)
	}
	if _, err := p.client.Publish(ctx, input); err != nil {
		return fmt.Errorf("sns publish: %w", err)
	}
	return nil
}

// Noop satisfies both the mail and publish surfaces and does nothing.
type Noop struct{}

func (Noop) Send(context.Context, string, string) error    { return nil }
func (Noop) Publish(context.Context, string, string) error { return nil }

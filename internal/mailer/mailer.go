package mailer

import (
	"context"
	"fmt"

	"eventboard/config"
	"eventboard/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"
)

// Mailer sends one HTML email to one recipient. attachmentPath may be empty.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody, attachmentPath string) error
}

// New creates a mailer from config. Provider "ses" uses AWS SES; "noop" or
// unknown values use a mailer that only logs.
func New(cfg *config.MailerConfig) (Mailer, error) {
	switch cfg.Provider {
	case "ses":
		awsCfg := aws.Config{
			Region: cfg.SESRegion,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(
					cfg.SESAccessKeyID,
					cfg.SESSecretAccessKey,
					"",
				),
			),
		}
		return &sesMailer{
			client:      ses.NewFromConfig(awsCfg),
			fromAddress: cfg.FromAddress,
			fromName:    cfg.FromName,
		}, nil
	case "noop":
		return &noopMailer{}, nil
	default:
		logger.WithComponent("mailer").Warn("unknown email provider, using noop", zap.String("provider", cfg.Provider))
		return &noopMailer{}, nil
	}
}

type sesMailer struct {
	client      *ses.Client
	fromAddress string
	fromName    string
}

func (s *sesMailer) source() string {
	if s.fromName != "" {
		return fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)
	}
	return s.fromAddress
}

func (s *sesMailer) Send(ctx context.Context, to, subject, htmlBody, attachmentPath string) error {
	if attachmentPath != "" {
		return s.sendRaw(ctx, to, subject, htmlBody, attachmentPath)
	}

	input := &ses.SendEmailInput{
		Source: aws.String(s.source()),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data:    aws.String(htmlBody),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}
	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("send email via SES: %w", err)
	}
	logger.WithComponent("mailer").Info("email sent",
		zap.String("to", to), zap.String("message_id", aws.ToString(result.MessageId)))
	return nil
}

// sendRaw goes through SendRawEmail, which is the only SES entry point that
// carries attachments.
func (s *sesMailer) sendRaw(ctx context.Context, to, subject, htmlBody, attachmentPath string) error {
	raw, err := buildRawMessage(s.source(), to, subject, htmlBody, attachmentPath)
	if err != nil {
		return fmt.Errorf("build raw message: %w", err)
	}
	result, err := s.client.SendRawEmail(ctx, &ses.SendRawEmailInput{
		Source:       aws.String(s.source()),
		Destinations: []string{to},
		RawMessage:   &types.RawMessage{Data: raw},
	})
	if err != nil {
		return fmt.Errorf("send raw email via SES: %w", err)
	}
	logger.WithComponent("mailer").Info("email sent with attachment",
		zap.String("to", to), zap.String("message_id", aws.ToString(result.MessageId)))
	return nil
}

type noopMailer struct{}

func (n *noopMailer) Send(ctx context.Context, to, subject, htmlBody, attachmentPath string) error {
	logger.WithComponent("mailer").Info("email would be sent (noop)",
		zap.String("to", to), zap.String("subject", subject), zap.String("attachment", attachmentPath))
	return nil
}

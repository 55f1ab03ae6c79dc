// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

/*
Package email delivers transactional mail (booking confirmations).

The domain layer depends only on the [Mailer] interface. Provider "ses" sends
through AWS SES; "noop" (the default) logs and discards, which keeps local
development free of AWS credentials. Delivery is always best-effort: a failed
confirmation never fails the booking that triggered it.
*/
package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/kenryalonzo/eventdev/internal/platform/config"
)

// Mailer is the outbound email contract.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody, textBody string) error
}

// NewMailer constructs a [Mailer] from configuration.
func NewMailer(cfg *config.Config, logger *slog.Logger) Mailer {
	switch cfg.EmailProvider {
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
			fromAddress: cfg.EmailFromAddress,
			fromName:    cfg.EmailFromName,
			logger:      logger,
		}
	case "noop":
		return &noopMailer{logger: logger}
	default:
		logger.Warn("unknown email provider, using noop", slog.String("provider", cfg.EmailProvider))
		return &noopMailer{logger: logger}
	}
}

// sesMailer sends mail through AWS SES.
type sesMailer struct {
	client      *ses.Client
	fromAddress string
	fromName    string
	logger      *slog.Logger
}

func (mailer *sesMailer) Send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	source := mailer.fromAddress
	if mailer.fromName != "" {
		source = fmt.Sprintf("%s <%s>", mailer.fromName, mailer.fromAddress)
	}

	input := &ses.SendEmailInput{
		Source: aws.String(source),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{},
		},
	}

	if htmlBody != "" {
		input.Message.Body.Html = &types.Content{
			Data:    aws.String(htmlBody),
			Charset: aws.String("UTF-8"),
		}
	}

	if textBody != "" {
		input.Message.Body.Text = &types.Content{
			Data:    aws.String(textBody),
			Charset: aws.String("UTF-8"),
		}
	}

	result, err := mailer.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("email: failed to send via SES: %w", err)
	}

	mailer.logger.Info("email_sent",
		slog.String("to", to),
		slog.String("message_id", aws.ToString(result.MessageId)),
	)

	return nil
}

// noopMailer logs the intent and discards the message.
type noopMailer struct {
	logger *slog.Logger
}

func (mailer *noopMailer) Send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	mailer.logger.InfoContext(ctx, "email_noop",
		slog.String("to", to),
		slog.String("subject", subject),
	)
	return nil
}

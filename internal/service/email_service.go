package service

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailService sends notification emails via Amazon SES
type EmailService struct {
	client     *sesv2.Client
	fromEmail  string
	fromName   string
	adminEmail string
	enabled    bool
}

// NewEmailService creates a new email service. With an empty fromEmail the
// service is disabled and every send becomes a logged no-op.
func NewEmailService(awsRegion, fromEmail, fromName, adminEmail string) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)
	return &EmailService{
		client:     sesv2.NewFromConfig(cfg),
		fromEmail:  fromEmail,
		fromName:   fromName,
		adminEmail: adminEmail,
		enabled:    true,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendRegistrationNotification tells the administrator that a teacher has
// registered and waits for approval
func (s *EmailService) SendRegistrationNotification(ctx context.Context, userEmail, schoolName string) error {
	if !s.enabled || s.adminEmail == "" {
		log.Printf("Skipping registration notification (email disabled): %s", userEmail)
		return nil
	}

	subject := "Neue Registrierung bei Vielseitig"
	textBody := fmt.Sprintf(`Eine neue Lehrkraft hat sich registriert und wartet auf Freischaltung.

E-Mail: %s
Schule: %s
`, userEmail, schoolName)
	htmlBody := fmt.Sprintf(`<p>Eine neue Lehrkraft hat sich registriert und wartet auf Freischaltung.</p>
<p><strong>E-Mail:</strong> %s<br><strong>Schule:</strong> %s</p>`, userEmail, schoolName)

	return s.sendEmail(ctx, s.adminEmail, subject, htmlBody, textBody)
}

// SendApprovalNotification tells a teacher that their account is active
func (s *EmailService) SendApprovalNotification(ctx context.Context, userEmail string) error {
	if !s.enabled {
		log.Printf("Skipping approval notification (email disabled): %s", userEmail)
		return nil
	}

	subject := "Ihr Vielseitig-Konto ist freigeschaltet"
	textBody := "Ihr Konto wurde freigeschaltet. Sie können sich jetzt anmelden.\n"
	htmlBody := "<p>Ihr Konto wurde freigeschaltet. Sie können sich jetzt anmelden.</p>"

	return s.sendEmail(ctx, userEmail, subject, htmlBody, textBody)
}

// sendEmail sends an email using Amazon SES
func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	log.Printf("Email sent: to=%s, subject=%s", toEmail, subject)
	return nil
}

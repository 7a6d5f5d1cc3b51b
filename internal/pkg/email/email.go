package email

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// Service defines the outbound email operations the application consumes.
type Service interface {
	SendVerificationEmail(userID int64, toEmail string) error
}

// SMTPConfig holds configuration for the SMTP server.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	BaseURL   string
}

type smtpService struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewService creates an SMTP-backed email service.
func NewService(config SMTPConfig, logger zerolog.Logger) Service {
	return &smtpService{config: config, logger: logger}
}

// SendVerificationEmail sends the account verification mail for a newly
// created student account.
func (s *smtpService) SendVerificationEmail(userID int64, toEmail string) error {
	token, err := generateVerificationToken()
	if err != nil {
		return fmt.Errorf("failed to generate verification token: %w", err)
	}

	verificationURL := fmt.Sprintf("%s/api/v1/auth/verify-email?token=%s", s.config.BaseURL, token)

	// Without SMTP credentials, log the link instead of sending. Keeps local
	// development working against a bare database.
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Int64("userID", userID).
			Str("toEmail", toEmail).
			Str("verificationURL", verificationURL).
			Msg("SMTP credentials not configured - verification email not sent")
		return nil
	}

	subject := "Verify Your School Account"
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Welcome!</h2>
				<p>An account has been created for you on the school platform.</p>
				<p>Please verify your email address by clicking the link below:</p>
				<p><a href="%s">Verify Email</a></p>
				<p>If you were not expecting this account, please contact the school office.</p>
			</div>
		</body>
		</html>
	`, verificationURL)

	if err := s.sendHTMLEmail(toEmail, subject, body); err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Str("toEmail", toEmail).
			Msg("Failed to send verification email")
		return err
	}

	s.logger.Info().Int64("userID", userID).Str("toEmail", toEmail).Msg("Verification email sent")
	return nil
}

func (s *smtpService) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	message := fmt.Sprintf("From: %s <%s>\r\n", s.config.FromName, s.config.FromEmail)
	message += fmt.Sprintf("To: %s\r\n", toEmail)
	message += fmt.Sprintf("Subject: %s\r\n", subject)
	message += "MIME-Version: 1.0\r\n"
	message += "Content-Type: text/html; charset=UTF-8\r\n"
	message += "\r\n" + htmlBody

	addr := s.config.Host + ":" + strconv.Itoa(s.config.Port)
	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{toEmail}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

const tokenChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func generateVerificationToken() (string, error) {
	result := make([]byte, 32)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(tokenChars))))
		if err != nil {
			return "", err
		}
		result[i] = tokenChars[n.Int64()]
	}
	return string(result), nil
}

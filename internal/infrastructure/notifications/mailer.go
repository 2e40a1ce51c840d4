package notifications

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/estospaces/realtysvc/domain"
)

// MailerService implements domain.Mailer over SMTP.
type MailerService struct {
	config *mailerConfig
	dialer *gomail.Dialer
	logger *zerolog.Logger
}

// NewMailerService creates a new Mailer instance with SMTP settings
// taken from the environment.
func NewMailerService(logger *zerolog.Logger) (*MailerService, error) {
	cfg, err := newMailerConfig()
	if err != nil {
		return nil, err
	}

	dialer := gomail.NewDialer(
		cfg.Host,
		cfg.Port,
		cfg.Username,
		cfg.Password,
	)

	return &MailerService{
		config: cfg,
		dialer: dialer,
		logger: logger,
	}, nil
}

// SendVerificationEmail implements domain.Mailer
func (m *MailerService) SendVerificationEmail(user *domain.User, verificationLink string) error {
	name := user.FullName
	if name == "" {
		name = "there"
	}

	body, err := renderVerificationEmail(name, verificationLink)
	if err != nil {
		return fmt.Errorf("failed to render verification email: %w", err)
	}

	if err := m.send(user.Email, "Verify your email address", body); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	m.logger.Info().Str("to", user.Email).Msg("verification email sent")
	return nil
}

// SendOTPEmail implements domain.Mailer
func (m *MailerService) SendOTPEmail(toEmail, code string) error {
	body, err := renderOTPEmail(code)
	if err != nil {
		return fmt.Errorf("failed to render otp email: %w", err)
	}

	if err := m.send(toEmail, "Your OTP for Password Reset", body); err != nil {
		return fmt.Errorf("failed to send otp email: %w", err)
	}

	m.logger.Info().Str("to", toEmail).Msg("otp email sent")
	return nil
}

func (m *MailerService) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}

var verificationTmpl = template.Must(template.New("verification").Parse(`<html>
<body style="font-family: sans-serif;">
  <p>Hi {{.Name}},</p>
  <p>Thanks for signing up with Estospaces. Please confirm your email
  address to activate your account.</p>
  <p><a href="{{.Link}}" style="display:inline-block;padding:10px 20px;background:#2b6cb0;color:#fff;text-decoration:none;border-radius:4px;">Verify Email</a></p>
  <p>This link expires in 24 hours. If you did not create an account,
  you can ignore this email.</p>
</body>
</html>`))

var otpTmpl = template.Must(template.New("otp").Parse(`<html>
<body style="font-family: sans-serif;">
  <p>We received a request to reset your password.</p>
  <p>Your one-time code is:</p>
  <p style="font-size:28px;letter-spacing:6px;font-weight:bold;">{{.Code}}</p>
  <p>The code expires in 5 minutes. If you did not request a reset,
  you can ignore this email.</p>
</body>
</html>`))

func renderVerificationEmail(name, link string) (string, error) {
	var buf bytes.Buffer
	err := verificationTmpl.Execute(&buf, struct {
		Name string
		Link string
	}{name, link})
	return buf.String(), err
}

func renderOTPEmail(code string) (string, error) {
	var buf bytes.Buffer
	err := otpTmpl.Execute(&buf, struct{ Code string }{code})
	return buf.String(), err
}

// mailerConfig holds SMTP configuration for sending emails.
type mailerConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

func newMailerConfig() (*mailerConfig, error) {
	cfg, err := env.ParseAs[mailerConfig]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse SMTP environment variables: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *mailerConfig) validate() error {
	if c.Host == "" {
		return fmt.Errorf("missing SMTP_HOST environment variable")
	}
	if c.Username == "" {
		return fmt.Errorf("missing SMTP_USERNAME environment variable")
	}
	if c.Password == "" {
		return fmt.Errorf("missing SMTP_PASSWORD environment variable")
	}
	if c.From == "" {
		return fmt.Errorf("missing SMTP_FROM environment variable")
	}
	return nil
}

var _ domain.Mailer = (*MailerService)(nil)

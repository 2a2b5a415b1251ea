package email

import (
	"fmt"

	"guesthouse-booking/pkg/utils"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Sender delivers guest-facing notification emails.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
	log       *zap.Logger
}

func NewClient(config utils.EmailConfig, log *zap.Logger) *Client {
	return &Client{
		host:      config.Host,
		port:      config.Port,
		user:      config.User,
		password:  config.Password,
		fromName:  config.FromName,
		fromEmail: config.From,
		log:       log.With(zap.String("client", "email")),
	}
}

// Send delivers a single HTML email over SMTP.
func (c *Client) Send(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("set email sender: %w", err)
	}

	if err := m.To(to); err != nil {
		return fmt.Errorf("set email recipient %s: %w", to, err)
	}

	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("create SMTP client: %w", err)
	}

	if err := client.DialAndSend(m); err != nil {
		c.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	c.log.Info("Email sent",
		zap.String("to", to),
		zap.String("subject", subject),
	)

	return nil
}

package notify

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"

	"github.com/invite-labs/event-service/internal/application/checkin"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
	Insecure bool
}

// SMTPNotifier sends the check-in confirmation mail. The recipient must be
// an email address; registrations that only carry a phone number get a
// PermanentError, which the check-in service logs and drops.
type SMTPNotifier struct {
	lg zerolog.Logger

	host     string
	port     int
	user     string
	pass     string
	from     string
	insecure bool

	timeout time.Duration
}

func NewSMTPNotifier(cfg SMTPConfig, lg zerolog.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		lg:       lg.With().Str("component", "smtp_notifier").Logger(),
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.Username,
		pass:     cfg.Password,
		from:     cfg.From,
		insecure: cfg.Insecure,
		timeout:  cfg.Timeout,
	}
}

func (s *SMTPNotifier) Notify(ctx context.Context, n checkin.Notification) error {
	if !strings.Contains(n.Recipient, "@") {
		return PermanentError{msg: "recipient is not an email address: " + n.Recipient}
	}

	subject := fmt.Sprintf("%s, you've checked in to %s", n.Name, n.EventName)
	text := fmt.Sprintf(
		"Dear %s,\n\nYou've successfully checked in to %s.\n\nName: %s\nRegistration: %s\nContact Number: %s\n",
		n.Name, n.EventName, n.Name, n.RegistrationRef, n.ContactNumber,
	)
	return s.send(ctx, n.Recipient, subject, text, renderCheckInHTML(n))
}

func (s *SMTPNotifier) send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return PermanentError{msg: "invalid from address: " + err.Error()}
	}
	if err := m.To(to); err != nil {
		return PermanentError{msg: "invalid to address: " + err.Error()}
	}
	m.Subject(subject)

	m.SetBodyString(mail.TypeTextPlain, textBody)
	m.AddAlternativeString(mail.TypeTextHTML, htmlBody)

	tlsPolicy := mail.TLSMandatory
	if s.insecure {
		tlsPolicy = mail.TLSOpportunistic
	}

	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithTLSPolicy(tlsPolicy),
	}
	if s.user != "" {
		opts = append(opts, mail.WithSMTPAuth(mail.SMTPAuthPlain), mail.WithUsername(s.user), mail.WithPassword(s.pass))
	}

	c, err := mail.NewClient(s.host, opts...)
	if err != nil {
		return PermanentError{msg: "smtp client init failed: " + err.Error()}
	}

	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		s.lg.Error().Err(err).Str("to", to).Msg("smtp send failed")

		msg := err.Error()
		if containsAny(msg, "535", "5.7.8", "authentication") {
			return PermanentError{msg: "smtp auth failed: " + msg}
		}
		return TemporaryError{msg: "smtp transient failure: " + msg}
	}

	s.lg.Info().Str("to", to).Str("subject", subject).Msg("smtp send ok")
	return nil
}

func renderCheckInHTML(n checkin.Notification) string {
	name := html.EscapeString(n.Name)
	event := html.EscapeString(n.EventName)
	ref := html.EscapeString(n.RegistrationRef)
	contact := html.EscapeString(n.ContactNumber)

	return `<!doctype html>
<html>
  <body style="font-family:Arial,Helvetica,sans-serif; line-height:1.4;">
    <h2>You've checked in</h2>
    <p>Dear ` + name + `,</p>
    <p><strong>Congratulations, you've successfully checked in to ` + event + `!</strong></p>
    <p>
      Name: ` + name + `<br/>
      Registration: ` + ref + `<br/>
      Contact Number: ` + contact + `
    </p>
    <p style="color:#555; font-size:12px;">
      If you have any questions or concerns, reply to this email.
    </p>
  </body>
</html>`
}

func containsAny(s string, subs ...string) bool {
	for _, x := range subs {
		if x != "" && strings.Contains(s, x) {
			return true
		}
	}
	return false
}

// Package mailer sends confirmation emails. Delivery is always best-effort:
// a failed send is logged and never fails the request that triggered it.
package mailer

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var errNotConfigured = errors.New("email not configured")

type Mailer struct {
	Host string
	Port int
	User string
	Pass string
	From string

	// send is swappable for tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func New(host string, port int, user, pass, from string) *Mailer {
	return &Mailer{
		Host: host,
		Port: port,
		User: user,
		Pass: pass,
		From: from,
		send: smtp.SendMail,
	}
}

// Configured reports whether SMTP credentials are present. When they are not,
// Send* helpers return without attempting delivery.
func (m *Mailer) Configured() bool {
	return m.Host != "" && m.User != "" && m.Pass != "" && m.From != ""
}

func (m *Mailer) sendHTML(to, subject, body string) error {
	if !m.Configured() {
		return errNotConfigured
	}

	msg := strings.Join([]string{
		"From: " + m.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=utf-8",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	return m.send(addr, auth, m.From, []string{to}, []byte(msg))
}

// SendApplicationReceived confirms receipt of an organizer application.
func (m *Mailer) SendApplicationReceived(to, fullName string, collateralAmount float64) error {
	p := message.NewPrinter(language.English)
	body := p.Sprintf(`
	<h2>Organizer Application Received</h2>
	<p>Dear %s,</p>
	<p>Thank you for applying to become a tournament organizer on SolCraft.</p>
	<p>Your application (collateral: $%.2f) has been received and is currently under review.</p>
	<p>We will contact you within 24-48 hours with the results.</p>
	<p>Best regards,<br>SolCraft Team</p>
	`, fullName, collateralAmount)

	return m.sendHTML(to, "SolCraft Organizer Application Received", body)
}

package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer delivers credential emails to registered teams.
type Mailer interface {
	SendCredentials(to, teamName, teamID, password string) error
}

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Configured reports whether the relay has enough settings to attempt
// delivery. Registration still succeeds when mail is unconfigured; the
// credentials are returned inline instead.
func (m *SMTPMailer) Configured() bool {
	return m.host != "" && m.from != ""
}

func (m *SMTPMailer) SendCredentials(to, teamName, teamID, password string) error {
	if !m.Configured() {
		return fmt.Errorf("smtp relay is not configured")
	}

	var body strings.Builder
	body.WriteString("From: " + m.from + "\r\n")
	body.WriteString("To: " + to + "\r\n")
	body.WriteString("Subject: Your Hackathon Portal Credentials\r\n")
	body.WriteString("\r\n")
	fmt.Fprintf(&body, "Hello %s,\r\n\r\n", teamName)
	body.WriteString("Your team has been registered on the portal.\r\n\r\n")
	fmt.Fprintf(&body, "Team ID: %s\r\n", teamID)
	fmt.Fprintf(&body, "Password: %s\r\n\r\n", password)
	body.WriteString("Please change your password after first login.\r\n")

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(body.String()))
}

package mailer

import (
	"fmt"
	"net/smtp"
)

type Mail struct {
	To          string
	Subject     string
	Body        string
	ContentType string // defaults to text/plain
}

type Sender interface {
	Send(m Mail) error
}

type SMTPSender struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func (s *SMTPSender) Send(m Mail) error {
	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)

	contentType := m.ContentType
	if contentType == "" {
		contentType = "text/plain"
	}

	msg := []byte("From: " + s.From + "\r\n" +
		"To: " + m.To + "\r\n" +
		"Subject: " + m.Subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: " + contentType + "; charset=\"utf-8\"\r\n" +
		"\r\n" +
		m.Body)

	return smtp.SendMail(addr, auth, s.From, []string{m.To}, msg)
}

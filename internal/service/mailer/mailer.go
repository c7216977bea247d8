package mailer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/mailer"
)

type MailerService struct {
	log    *zap.Logger
	sender mailer.Sender
}

func NewMailerService(log *zap.Logger, sender mailer.Sender) *MailerService {
	return &MailerService{
		log:    log,
		sender: sender,
	}
}

// SendReportEmail delivers a finished HTML report to the configured
// recipient. The document arrives fully rendered; this service only wraps
// and sends it.
func (m *MailerService) SendReportEmail(recipient, timeRange, htmlDoc string) error {
	subject := fmt.Sprintf("Hall Booking Report (%s)", timeRange)

	mail := mailer.Mail{
		To:          recipient,
		Subject:     subject,
		Body:        htmlDoc,
		ContentType: "text/html",
	}

	err := m.sender.Send(mail)
	if err != nil {
		m.log.Error("Failed to send report email", zap.Error(err), zap.String("email", recipient))
		return err
	}

	m.log.Info("Report email sent", zap.String("email", recipient), zap.String("range", timeRange))
	return nil
}

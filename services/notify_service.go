package services

import (
	"garment-app/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// NotifyService mails state-transition notifications to the approver
// address. Fire-and-forget: reconciliation never depends on delivery.
type NotifyService struct{}

func NewNotifyService() *NotifyService {
	return &NotifyService{}
}

func (s *NotifyService) Notify(subject, body string) {
	if config.SMTPHost == "" || config.ApproverMail == "" {
		logrus.WithField("subject", subject).Debug("mail disabled, skipping notification")
		return
	}

	go func() {
		m := gomail.NewMessage()
		m.SetHeader("From", config.MailFrom)
		m.SetHeader("To", config.ApproverMail)
		m.SetHeader("Subject", subject)
		m.SetBody("text/plain", body)

		d := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
		if err := d.DialAndSend(m); err != nil {
			logrus.WithError(err).WithField("subject", subject).Warn("failed to send notification mail")
		}
	}()
}

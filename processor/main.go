package main

import (
	"fmt"
	"strings"
	"time"

	"garment-app/config"
	"garment-app/repositories"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Reminder mailer for workflow requests left pending by the approver.
// Meant to run from a scheduler (cron / task scheduler).

const pendingAge = 24 * time.Hour

func main() {
	config.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	workflowRepo := repositories.NewWorkflowRepository(db)

	cutoff := time.Now().Add(-pendingAge)
	requests, err := workflowRepo.PendingOlderThan(cutoff)
	if err != nil {
		logrus.Fatalf("Failed to load pending workflow requests: %v", err)
	}

	if len(requests) == 0 {
		logrus.Info("No pending workflow requests older than cutoff")
		return
	}

	var lines []string
	for _, req := range requests {
		lines = append(lines, fmt.Sprintf(
			"<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			req.RequestNo, req.RequestType, req.JobworkNo,
			req.CreatedAt.Format("2006-01-02 15:04:05"),
		))
	}

	body := "<p>The following workflow requests have been pending for more than 24 hours:</p>" +
		"<table border='1' cellpadding='4'>" +
		"<tr><th>Request No</th><th>Type</th><th>Jobwork No</th><th>Created At</th></tr>" +
		strings.Join(lines, "") +
		"</table>"

	if config.SMTPHost == "" || config.ApproverMail == "" {
		logrus.Warnf("SMTP not configured, skipping reminder for %d pending requests", len(requests))
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.MailFrom)
	msg.SetHeader("To", config.ApproverMail)
	msg.SetHeader("Subject", fmt.Sprintf("Reminder: %d workflow requests awaiting approval", len(requests)))
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		logrus.Fatalf("Failed to send reminder email: %v", err)
	}

	logrus.Infof("Reminder sent for %d pending workflow requests", len(requests))
}

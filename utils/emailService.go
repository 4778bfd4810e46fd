package utils

import (
	"fmt"
	"lms/config"
	"log"
	"net/smtp"
	"strings"
	"time"
)

// SendEmail delivers an HTML email through the configured SMTP account.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		log.Println("Email sender not configured; skipping email:", subject)
		return nil
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: LMS <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #2C3E50; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #2C3E50; line-height: 1.6; }
			.content h2 { color: #2C3E50; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #3498DB; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #3498DB; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LEARNING PLATFORM</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				You are receiving this email because you have an account on our learning platform.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendEnrollmentWelcome mails a student after a successful enrollment.
func SendEnrollmentWelcome(email, name, courseTitle string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You are now enrolled in <strong>%s</strong>.</p>
		<div class="info-box">Head over to your dashboard to start with week 1.</div>
		<a class="btn" href="%s">Open course</a>`,
		name, courseTitle, config.AppConfig.FrontendURL)

	return SendEmail([]string{email}, fmt.Sprintf("Enrolled: %s", courseTitle), getEmailTemplate("Welcome aboard!", body))
}

// SendGradeNotification mails a student when an instructor grades their
// submission.
func SendGradeNotification(email, name, assignmentTitle string, grade float64, totalPoints int, feedback string) error {
	feedbackBlock := ""
	if feedback != "" {
		feedbackBlock = fmt.Sprintf(`<div class="info-box">%s</div>`, feedback)
	}
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your submission for <strong>%s</strong> has been graded: <strong>%.0f / %d</strong>.</p>
		%s`,
		name, assignmentTitle, grade, totalPoints, feedbackBlock)

	return SendEmail([]string{email}, fmt.Sprintf("Graded: %s", assignmentTitle), getEmailTemplate("Your grade is in", body))
}

// SendAssignmentReminder mails a student about an assignment due soon.
func SendAssignmentReminder(email, name, assignmentTitle string, due time.Time) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p><strong>%s</strong> is due on %s and we have not received your submission yet.</p>
		<a class="btn" href="%s">Submit now</a>`,
		name, assignmentTitle, due.Format("Mon, 02 Jan 2006 15:04"), config.AppConfig.FrontendURL)

	return SendEmail([]string{email}, fmt.Sprintf("Due soon: %s", assignmentTitle), getEmailTemplate("Assignment due soon", body))
}

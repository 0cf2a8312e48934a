package utils

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional mail over SMTP. A nil Mailer means mail is not
// configured and sends are skipped.
type Mailer struct {
	host     string
	port     int
	username string
	password string
}

func NewMailer(host string, port int, username, password string) *Mailer {
	if host == "" || username == "" {
		return nil
	}
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

// SendBookingConfirmation emails a student after a successful payment capture.
func (m *Mailer) SendBookingConfirmation(to, className string, amount float64) error {
	body := fmt.Sprintf(`
	<html>
	<body>
		<h2>Booking Confirmed</h2>
		<p>Your payment of $%.2f for <strong>%s</strong> was received.</p>
		<p>See you in class!</p>
	</body>
	</html>`, amount, className)

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.username)
	mailer.SetHeader("To", to)
	mailer.SetHeader("Subject", "Booking Confirmation")
	mailer.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)

	if err := dialer.DialAndSend(mailer); err != nil {
		log.Printf("Failed to send email: %v", err)
		return err
	}

	log.Printf("Booking confirmation sent to %s", to)
	return nil
}

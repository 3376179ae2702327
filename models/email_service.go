package models

import (
	"fmt"
	"strconv"

	"storefront/config"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService() (*EmailService, error) {
	cfg := config.AppConfig

	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass)

	return &EmailService{dialer: dialer, from: cfg.SMTPFrom}, nil
}

func (s *EmailService) SendOrderConfirmation(toEmail string, order Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order %s confirmed", order.OrderNumber))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>Thanks for your order!</h2>
    <p>Order number: <strong>%s</strong></p>
    <p>Status: %s</p>
    <p>Total: %.2f</p>
    <p>We'll let you know when it ships.</p>
</body>
</html>`, order.OrderNumber, order.Status, order.TotalAmount)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}

package email

import (
	"fmt"
	"net/smtp"

	notificationservice "delivery-marketplace/internal/service/notification"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

type Sender struct {
	cfg Config
}

func New(cfg Config) *Sender {
	return &Sender{
		cfg: cfg,
	}
}

func (s *Sender) Send(event notificationservice.NotificationEvent) error {
	msg := buildMessage(s.cfg.From, event)

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	}

	addr := s.cfg.Host + ":" + s.cfg.Port

	err := smtp.SendMail(addr, auth, s.cfg.From, []string{event.UserEmail}, msg)
	if err != nil {
		return fmt.Errorf("gateway email, send: %w", err)
	}

	return nil
}

func buildMessage(from string, event notificationservice.NotificationEvent) []byte {
	body := fmt.Sprintf("Hello %s,\r\n\r\n%s\r\n", event.UserName, event.Message)

	if event.DeliveryTitle != "" {
		body += fmt.Sprintf("\r\nDelivery: %s\r\n", event.DeliveryTitle)
	}
	if event.PickupAddress != "" {
		body += fmt.Sprintf("Pickup: %s\r\n", event.PickupAddress)
	}
	if event.DropoffAddress != "" {
		body += fmt.Sprintf("Dropoff: %s\r\n", event.DropoffAddress)
	}
	if !event.DeliveryDeadline.IsZero() {
		body += fmt.Sprintf("Deadline: %s\r\n", event.DeliveryDeadline.Format("2006-01-02 15:04 MST"))
	}

	return []byte(fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s", from, event.UserEmail, event.Title, body))
}

package notify

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/leafload/leafload-api/internal/config"
)

// OrderSummary is the fully resolved order handed over by the order
// workflow after the creating transaction has committed.
type OrderSummary struct {
	OrderID   uint
	OrderDate time.Time

	RestaurantName string
	OwnerEmail     string

	CustomerName    string
	CustomerAddress string
	CustomerRegion  string

	DeliveryTimeMin *int

	Items []OrderLine
}

type OrderLine struct {
	Title     string
	Quantity  int
	UnitPrice float64
}

func (s OrderSummary) Total() float64 {
	var total float64
	for _, line := range s.Items {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

// Mailer sends order notifications to restaurant owners over SMTP. With no
// SMTP host configured it falls back to console mode and logs the mail
// body instead, so local setups still see what would have been sent.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg *config.Config) *Mailer {
	m := &Mailer{from: cfg.SMTPFrom}

	if cfg.SMTPHost != "" {
		m.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
		log.Printf("mail transport configured: %s:%d", cfg.SMTPHost, cfg.SMTPPort)
	} else {
		log.Println("SMTP_HOST not configured, order mails will be logged to console only")
	}

	return m
}

func (m *Mailer) SendOrderNotification(data OrderSummary) error {
	subject := fmt.Sprintf("Neue Bestellung #%d – %s", data.OrderID, data.RestaurantName)
	body := buildOrderMailBody(data)

	if m.dialer == nil {
		log.Println("──── EMAIL (console mode) ────")
		log.Printf("To:      %s", data.OwnerEmail)
		log.Printf("Subject: %s", subject)
		log.Printf("Body:\n%s", body)
		log.Println("──── END EMAIL ────")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", data.OwnerEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send order mail to %s: %w", data.OwnerEmail, err)
	}

	log.Printf("order mail sent to %s (order #%d)", data.OwnerEmail, data.OrderID)
	return nil
}

func buildOrderMailBody(data OrderSummary) string {
	deliveryEstimate := "Nicht verfügbar"
	if data.DeliveryTimeMin != nil {
		deliveryEstimate = fmt.Sprintf("ca. %d Minuten", *data.DeliveryTimeMin)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Neue Bestellung #%d – %s\n\n", data.OrderID, data.RestaurantName)
	fmt.Fprintf(&b, "Kunde: %s\n", data.CustomerName)
	fmt.Fprintf(&b, "Adresse: %s\n", orDash(data.CustomerAddress))
	fmt.Fprintf(&b, "Region: %s\n", orDash(data.CustomerRegion))
	fmt.Fprintf(&b, "Bestellt am: %s\n", data.OrderDate.Format("02.01.2006 15:04"))
	fmt.Fprintf(&b, "Geschätzte Lieferzeit: %s\n\n", deliveryEstimate)

	for _, line := range data.Items {
		fmt.Fprintf(&b, "  %dx %s  €%.2f\n", line.Quantity, line.Title, line.UnitPrice*float64(line.Quantity))
	}
	fmt.Fprintf(&b, "\nGesamtpreis: €%.2f\n", data.Total())

	return b.String()
}

func orDash(v string) string {
	if v == "" {
		return "—"
	}
	return v
}

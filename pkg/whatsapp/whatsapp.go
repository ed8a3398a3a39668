// Package whatsapp BD Garaj'a giden WhatsApp derin linklerini ve
// randevu bildirimlerini üretir.
package whatsapp

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultNumber garajın WhatsApp hattı (uluslararası format, + olmadan).
const DefaultNumber = "905326832603"

// Link wa.me derin linki üretir. Mesaj boşsa text parametresi hiç eklenmez.
func Link(number, message string) string {
	if number == "" {
		number = DefaultNumber
	}
	if message == "" {
		return fmt.Sprintf("https://wa.me/%s", number)
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}

// WebLink masaüstü tarayıcılar için web.whatsapp.com varyantı.
func WebLink(number, message string) string {
	if number == "" {
		number = DefaultNumber
	}
	if message == "" {
		return fmt.Sprintf("https://web.whatsapp.com/send?phone=%s", number)
	}
	return fmt.Sprintf("https://web.whatsapp.com/send?phone=%s&text=%s", number, url.QueryEscape(message))
}

// AppointmentMessage randevu bildirimi gövdesini oluşturur.
func AppointmentMessage(customerName, phone, email, service, date, timeSlot, notes string, appointmentID uint) string {
	if notes == "" {
		notes = "Yok"
	}
	return fmt.Sprintf(`🏍️ YENİ RANDEVU!

👤 Müşteri: %s
📞 Telefon: %s
📧 E-posta: %s
🔧 Hizmet: %s
📅 Tarih: %s
🕐 Saat: %s
📝 Not: %s

Randevu ID: %d`, customerName, phone, email, service, date, timeSlot, notes, appointmentID)
}

// Notifier yeni randevu bildirimlerini garaja iletir. Enabled false iken
// mesaj gönderilmez, sadece loglanır (geliştirme ortamı).
type Notifier struct {
	Enabled bool
	Number  string
	client  *http.Client
}

func NewNotifier(enabled bool, number string) *Notifier {
	if number == "" {
		number = DefaultNumber
	}
	return &Notifier{
		Enabled: enabled,
		Number:  number,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Send mesajı Twilio WhatsApp API'si üzerinden gönderir.
func (n *Notifier) Send(message string) error {
	if !n.Enabled {
		log.Printf("[MOCK WhatsApp] Message to %s:\n%s", n.Number, message)
		return nil
	}

	accountSID := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_WHATSAPP_FROM")
	if accountSID == "" || authToken == "" || from == "" {
		return fmt.Errorf("twilio credentials are not configured")
	}

	form := url.Values{}
	form.Set("Body", message)
	form.Set("From", from)
	form.Set("To", "whatsapp:+"+n.Number)

	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", accountSID)
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(accountSID, authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("could not send WhatsApp message: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("twilio API error (%d): %s", resp.StatusCode, string(body))
	}

	log.Printf("WhatsApp notification sent to %s", n.Number)
	return nil
}

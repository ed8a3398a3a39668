// pkg/email/email.go
package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"time"
)

type EmailService struct {
	apiKey    string
	from      string
	templates *template.Template
}

type EmailData struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

// Template data structures
type AppointmentNotificationData struct {
	CustomerName string
	Phone        string
	Email        string
	Service      string
	Date         string
	Time         string
	Notes        string
}

type CommentNotificationData struct {
	UserName    string
	ServiceName string
	Rating      int
	CommentText string
}

type AppointmentDigestData struct {
	Date         time.Time
	PendingCount int64
	TodayCount   int64
	Appointments []AppointmentNotificationData
}

func NewEmailService(apiKey, from string) (*EmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %v", err)
	}

	return &EmailService{
		apiKey:    apiKey,
		from:      from,
		templates: templates,
	}, nil
}

func (s *EmailService) sendTemplateEmail(to, subject, templateName string, data interface{}) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("template execution error: %v", err)
	}

	emailData := EmailData{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    body.String(),
	}

	jsonData, err := json.Marshal(emailData)
	if err != nil {
		return fmt.Errorf("error marshaling email data: %v", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("resend API error: %s", string(respBody))
	}

	log.Printf("Email sent to %s: %s", to, subject)
	return nil
}

// SendAppointmentNotification yeni randevu bildirimini garaj adresine gönderir.
func (s *EmailService) SendAppointmentNotification(to string, data AppointmentNotificationData) error {
	subject := fmt.Sprintf("Yeni Randevu: %s - %s %s", data.CustomerName, data.Date, data.Time)
	return s.sendTemplateEmail(to, subject, "appointment_notification.html", data)
}

// SendCommentNotification moderasyon bekleyen yeni yorum bildirimi.
func (s *EmailService) SendCommentNotification(to string, data CommentNotificationData) error {
	subject := fmt.Sprintf("Yeni Müşteri Yorumu: %s", data.UserName)
	return s.sendTemplateEmail(to, subject, "comment_notification.html", data)
}

// SendAppointmentDigest günlük bekleyen randevu özetini gönderir.
func (s *EmailService) SendAppointmentDigest(to string, data AppointmentDigestData) error {
	subject := fmt.Sprintf("Randevu Özeti - %s", data.Date.Format("02.01.2006"))
	return s.sendTemplateEmail(to, subject, "appointment_digest.html", data)
}

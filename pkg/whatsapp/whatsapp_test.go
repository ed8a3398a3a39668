package whatsapp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkWithMessage(t *testing.T) {
	link := Link("", "Merhaba")

	assert.Equal(t, "https://wa.me/905326832603?text=Merhaba", link)
}

func TestLinkEncodesMessage(t *testing.T) {
	link := Link("", "Randevu almak istiyorum")

	assert.Contains(t, link, "905326832603")
	assert.Contains(t, link, "text=Randevu+almak+istiyorum")
}

func TestLinkEmptyMessageOmitsTextParam(t *testing.T) {
	link := Link("", "")

	assert.Equal(t, "https://wa.me/905326832603", link)
	assert.NotContains(t, link, "text=")
}

func TestLinkCustomNumber(t *testing.T) {
	link := Link("905551112233", "selam")

	assert.Equal(t, "https://wa.me/905551112233?text=selam", link)
}

func TestWebLink(t *testing.T) {
	assert.Equal(t, "https://web.whatsapp.com/send?phone=905326832603", WebLink("", ""))
	assert.Equal(t,
		"https://web.whatsapp.com/send?phone=905326832603&text=Merhaba",
		WebLink("", "Merhaba"))
}

func TestAppointmentMessage(t *testing.T) {
	msg := AppointmentMessage("Ahmet Yıldız", "05321234567", "a@x.com",
		"AlienTech Yazılım", "2025-06-01", "10:00", "zincir sesi var", 42)

	assert.Contains(t, msg, "YENİ RANDEVU")
	assert.Contains(t, msg, "Ahmet Yıldız")
	assert.Contains(t, msg, "05321234567")
	assert.Contains(t, msg, "a@x.com")
	assert.Contains(t, msg, "AlienTech Yazılım")
	assert.Contains(t, msg, "2025-06-01")
	assert.Contains(t, msg, "10:00")
	assert.Contains(t, msg, "zincir sesi var")
	assert.True(t, strings.HasSuffix(msg, "Randevu ID: 42"))
}

func TestAppointmentMessageEmptyNotes(t *testing.T) {
	msg := AppointmentMessage("Ali", "1", "a@b.c", "Bakım & Onarım", "2025-06-01", "10:00", "", 1)

	assert.Contains(t, msg, "Not: Yok")
}

func TestNotifierDisabledSendIsNoop(t *testing.T) {
	n := NewNotifier(false, "")

	err := n.Send("test mesajı")

	assert.NoError(t, err)
	assert.Equal(t, DefaultNumber, n.Number)
}

func TestNotifierEnabledWithoutCredentials(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")
	t.Setenv("TWILIO_WHATSAPP_FROM", "")

	n := NewNotifier(true, "")

	err := n.Send("test mesajı")

	assert.Error(t, err)
}

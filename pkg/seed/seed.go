package seed

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bdgaraj_backend/internal/model"
)

// SeedDefaultAdmin ilk kurulumda admin/admin123 hesabını oluşturur.
func SeedDefaultAdmin(db *gorm.DB) {
	var count int64
	db.Model(&model.Admin{}).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Could not hash default admin password: %v", err)
		return
	}

	admin := model.Admin{Username: "admin", Password: string(hashed)}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error creating default admin: %v", err)
		return
	}

	log.Println("Default admin created: username=admin, password=admin123")
}

// SeedDefaultServices garajın dört temel hizmetini ekler.
func SeedDefaultServices(db *gorm.DB) {
	var count int64
	db.Model(&model.Service{}).Count(&count)
	if count > 0 {
		return
	}

	services := []model.Service{
		{Name: "AlienTech Yazılım", Description: "Motor performans optimizasyonu ve ECU yazılımı", Icon: "💻"},
		{Name: "Bakım & Onarım", Description: "Periyodik bakım ve genel onarım hizmetleri", Icon: "🔧"},
		{Name: "Çanta Montajı", Description: "TSE onaylı çanta sistemleri projelendirme ve montaj", Icon: "🧳"},
		{Name: "Sigorta Takibi", Description: "Kaza ve hasar durumlarında sigorta işlemleri takibi", Icon: "📋"},
	}

	for _, service := range services {
		result := db.FirstOrCreate(&service, model.Service{Name: service.Name})
		if result.Error != nil {
			log.Printf("Error creating service %s: %v", service.Name, result.Error)
		}
	}

	log.Printf("%d default services created", len(services))
}

// SeedDefaultContent contact-info ve cta-section tekil kayıtlarını hazırlar.
func SeedDefaultContent(db *gorm.DB) {
	var contactCount int64
	db.Model(&model.ContactInfo{}).Count(&contactCount)
	if contactCount == 0 {
		contact := model.ContactInfo{
			Phone:          "+90 532 683 26 03",
			WhatsApp:       "905326832603",
			Email:          "bdgaraj1@gmail.com",
			WorkingHours:   "Hafta içi 09:00 - 19:00, Cumartesi 09:00 - 17:00",
			EmergencyPhone: "+90 532 683 26 03",
		}
		if err := db.Create(&contact).Error; err != nil {
			log.Printf("Error creating default contact info: %v", err)
		}
	}

	var ctaCount int64
	db.Model(&model.CTASection{}).Count(&ctaCount)
	if ctaCount == 0 {
		cta := model.CTASection{
			Title:      "Motosikletiniz için randevu alın",
			Subtitle:   "Uzman ekibimiz en kısa sürede size dönüş yapsın",
			ButtonText: "Randevu Al",
		}
		if err := db.Create(&cta).Error; err != nil {
			log.Printf("Error creating default CTA section: %v", err)
		}
	}
}

package seeds

import (
	"log"
	"strings"

	"gorm.io/gorm"

	paymentTypeModel "schoolpayment_backend/internals/features/finance/payment_types/model"
	authService "schoolpayment_backend/internals/features/users/auth/service"
	userModel "schoolpayment_backend/internals/features/users/user/model"
)

// RunAllSeeds mengisi data awal yang idempotent: jenis pembayaran baku
// dan satu akun admin bila belum ada.
func RunAllSeeds(db *gorm.DB, adminEmail, adminPassword string) {
	SeedPaymentTypes(db)
	SeedAdminUser(db, adminEmail, adminPassword)
}

func SeedPaymentTypes(db *gorm.DB) {
	defaults := []string{"SPP", "UTS", "UAS", "Ekstrakurikuler", "Lainnya"}
	for _, name := range defaults {
		var count int64
		if err := db.Model(&paymentTypeModel.PaymentTypeModel{}).
			Where("LOWER(payment_type_name) = ?", strings.ToLower(name)).
			Count(&count).Error; err != nil {
			log.Println("[ERROR] Gagal cek payment type:", err)
			return
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&paymentTypeModel.PaymentTypeModel{Name: name}).Error; err != nil {
			log.Println("[ERROR] Gagal seed payment type:", err)
			return
		}
	}
	log.Println("✅ Seed payment types selesai")
}

func SeedAdminUser(db *gorm.DB, email, password string) {
	if email == "" || password == "" {
		log.Println("[INFO] Seed admin dilewati: kredensial tidak diset")
		return
	}

	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("role = ? AND deleted_at IS NULL", "ADMIN").
		Count(&count).Error; err != nil {
		log.Println("[ERROR] Gagal cek admin:", err)
		return
	}
	if count > 0 {
		return
	}

	hashed, err := authService.HashPassword(password)
	if err != nil {
		log.Println("[ERROR] Gagal hash password admin:", err)
		return
	}

	admin := userModel.UserModel{
		Name:     "Administrator",
		Email:    strings.ToLower(email),
		Password: hashed,
		Role:     "ADMIN",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Println("[ERROR] Gagal seed admin:", err)
		return
	}
	log.Println("✅ Seed admin selesai:", admin.Email)
}

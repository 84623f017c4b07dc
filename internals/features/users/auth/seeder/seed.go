package seeder

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"gerejaku_backend/internals/configs"
	"gerejaku_backend/internals/constants"
	authModel "gerejaku_backend/internals/features/users/auth/model"
	authService "gerejaku_backend/internals/features/users/auth/service"
)

// SeedAdminAccounts creates the two admin accounts from env on first boot.
// Credentials live in the environment, not in source control.
func SeedAdminAccounts(db *gorm.DB) {
	seedOne(db, constants.RoleFullAdmin,
		configs.GetEnv("FULL_ADMIN_EMAIL"),
		configs.GetEnv("FULL_ADMIN_PASSWORD"))
	seedOne(db, constants.RoleAnnouncementAdmin,
		configs.GetEnv("ANNOUNCEMENT_ADMIN_EMAIL"),
		configs.GetEnv("ANNOUNCEMENT_ADMIN_PASSWORD"))
}

func seedOne(db *gorm.DB, role, email, password string) {
	if email == "" || password == "" {
		log.Printf("[SEED] %s account not configured, skipping", role)
		return
	}

	var existing authModel.AdminAccountModel
	err := db.Where("LOWER(admin_account_email) = LOWER(?)", email).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[SEED] lookup %s failed: %v", role, err)
		return
	}

	hash, err := authService.HashPassword(password)
	if err != nil {
		log.Printf("[SEED] hash for %s failed: %v", role, err)
		return
	}
	account := authModel.AdminAccountModel{
		AdminAccountEmail:        email,
		AdminAccountPasswordHash: hash,
		AdminAccountRole:         role,
	}
	if err := db.Create(&account).Error; err != nil {
		log.Printf("[SEED] create %s failed: %v", role, err)
		return
	}
	log.Printf("[SEED] created %s account %s", role, email)
}

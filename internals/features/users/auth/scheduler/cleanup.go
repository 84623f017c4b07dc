package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"gerejaku_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler purges blacklisted tokens that expired more
// than TOKEN_BLACKLIST_TTL_DAYS ago (default 7), once a day.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			var expiredTokens []model.TokenBlacklist
			if err := db.
				Where("expired_at < ? AND deleted_at IS NULL", deleteBefore).
				Limit(100).
				Find(&expiredTokens).Error; err != nil {
				log.Printf("[CLEANUP] fetch expired tokens failed: %v", err)
			} else if len(expiredTokens) > 0 {
				if err := db.Delete(&expiredTokens).Error; err != nil {
					log.Printf("[CLEANUP] delete failed: %v", err)
				} else {
					log.Printf("[CLEANUP] removed %d expired blacklist tokens", len(expiredTokens))
				}
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}

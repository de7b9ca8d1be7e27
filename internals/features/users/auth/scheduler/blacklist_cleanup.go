package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"schoolku_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler menghapus token blacklist yang sudah kadaluarsa setiap jam.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			res := db.Where("expired_at < ?", time.Now()).Delete(&model.TokenBlacklistModel{})
			if res.Error != nil {
				log.Println("[ERROR] Gagal membersihkan token blacklist:", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("[INFO] Token blacklist dibersihkan: %d token kadaluarsa dihapus\n", res.RowsAffected)
			}
		}
	}()
}

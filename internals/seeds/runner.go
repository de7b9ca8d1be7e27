package seeds

import (
	"gorm.io/gorm"

	users "schoolku_backend/internals/seeds/users/auth"
)

// RunAllSeeds dipanggil manual (SEED=true) untuk bootstrap data awal.
// Seed admin pertama jadi alternatif jalur publik /create-admin.
func RunAllSeeds(db *gorm.DB) {
	users.SeedUsersFromJSON(db, "internals/seeds/users/auth/data_users.json")
}

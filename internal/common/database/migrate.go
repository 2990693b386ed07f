// Package database provides database connection and management.
package database

import (
	"gorm.io/gorm"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/models"
)

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.PG{},
		&models.Room{},
		&models.Tenant{},
		&models.Booking{},
		&models.Payment{},
	); err != nil {
		return err
	}

	// One active booking per bed slot. AutoMigrate cannot express a partial
	// unique index, so it is applied directly; both postgres and sqlite
	// accept this syntax. The index backstops the locked check-then-insert
	// in the ledger service: a lost race surfaces as a uniqueness violation
	// instead of a double booking.
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_bed
		 ON bookings (room_id, bed_no)
		 WHERE status = 'Active'`,
	).Error
}

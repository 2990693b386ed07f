// Package main is the application entry point.
package main

import (
	stderrors "errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/crypto"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/models"
)

// Default owner credentials, meant to be changed after first login.
const (
	seedOwnerName     = "Owner"
	seedOwnerEmail    = "owner@example.com"
	seedOwnerPassword = "ownerpass"
)

// seed creates the default owner account and a starter property on an
// empty database. Runs are idempotent: existing data is left alone.
func seed(db *gorm.DB, log *zap.Logger) error {
	var owner models.User
	err := db.Where("email = ?", seedOwnerEmail).First(&owner).Error
	if err == nil {
		return nil
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := crypto.HashPassword(seedOwnerPassword)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		owner := &models.User{
			Name:         seedOwnerName,
			Email:        seedOwnerEmail,
			PasswordHash: hash,
			Role:         models.RoleOwner,
		}
		if err := tx.Create(owner).Error; err != nil {
			return err
		}

		var pgCount int64
		if err := tx.Model(&models.PG{}).Count(&pgCount).Error; err != nil {
			return err
		}
		if pgCount > 0 {
			return nil
		}

		pg := &models.PG{
			Name:    "Central PG",
			Address: "MG Road",
		}
		if err := tx.Create(pg).Error; err != nil {
			return err
		}

		rooms := []models.Room{
			{PGID: &pg.ID, RoomNo: "101", RoomType: "Shared", TotalBeds: 3, RentPerBed: 6000},
			{PGID: &pg.ID, RoomNo: "102", RoomType: "Shared", TotalBeds: 2, RentPerBed: 7500},
		}
		for i := range rooms {
			if err := tx.Create(&rooms[i]).Error; err != nil {
				return err
			}
		}

		log.Info("Seeded default owner and starter property",
			zap.String("email", seedOwnerEmail),
			zap.String("pg", pg.Name),
		)
		return nil
	})
}

// Package repository provides the data access layer.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/models"
)

// PGRepository stores properties.
type PGRepository struct {
	db *gorm.DB
}

// NewPGRepository creates a property repository.
func NewPGRepository(db *gorm.DB) *PGRepository {
	return &PGRepository{db: db}
}

// Create inserts a property.
func (r *PGRepository) Create(ctx context.Context, pg *models.PG) error {
	return r.db.WithContext(ctx).Create(pg).Error
}

// GetByID fetches a property by ID.
func (r *PGRepository) GetByID(ctx context.Context, id int64) (*models.PG, error) {
	var pg models.PG
	err := r.db.WithContext(ctx).First(&pg, id).Error
	if err != nil {
		return nil, err
	}
	return &pg, nil
}

// GetByIDWithRooms fetches a property with its rooms.
func (r *PGRepository) GetByIDWithRooms(ctx context.Context, id int64) (*models.PG, error) {
	var pg models.PG
	err := r.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Order("room_no ASC")
		}).
		First(&pg, id).Error
	if err != nil {
		return nil, err
	}
	return &pg, nil
}

// List fetches properties, oldest first.
func (r *PGRepository) List(ctx context.Context, offset, limit int) ([]*models.PG, int64, error) {
	var pgs []*models.PG
	var total int64

	query := r.db.WithContext(ctx).Model(&models.PG{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("id ASC").Offset(offset).Limit(limit).Find(&pgs).Error; err != nil {
		return nil, 0, err
	}

	return pgs, total, nil
}

// Count returns the number of properties.
func (r *PGRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PG{}).Count(&count).Error
	return count, err
}

// RoomRepository stores rooms.
type RoomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a room repository.
func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// Create inserts a room.
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

// GetByID fetches a room by ID.
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).First(&room, id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GetByIDWithPG fetches a room with its property.
func (r *RoomRepository) GetByIDWithPG(ctx context.Context, id int64) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).
		Preload("PG").
		First(&room, id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GetByIDForUpdate fetches a room inside tx with a row lock. Serialises
// concurrent booking creation on the same room.
func (r *RoomRepository) GetByIDForUpdate(ctx context.Context, tx *gorm.DB, id int64) (*models.Room, error) {
	var room models.Room
	err := tx.WithContext(ctx).Set("gorm:query_option", "FOR UPDATE").First(&room, id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// List fetches rooms, optionally filtered by property.
func (r *RoomRepository) List(ctx context.Context, offset, limit int, pgID *int64) ([]*models.Room, int64, error) {
	var rooms []*models.Room
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Room{})
	if pgID != nil {
		query = query.Where("pg_id = ?", *pgID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("PG").Order("room_no ASC").Offset(offset).Limit(limit).Find(&rooms).Error; err != nil {
		return nil, 0, err
	}

	return rooms, total, nil
}

// Count returns the number of rooms.
func (r *RoomRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Room{}).Count(&count).Error
	return count, err
}

// Package repository provides the data access layer.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/models"
)

// BookingRepository stores bookings.
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a booking repository.
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts a booking.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// GetByID fetches a booking by ID.
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByIDWithDetails fetches a booking with tenant and room loaded.
func (r *BookingRepository) GetByIDWithDetails(ctx context.Context, id int64) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Tenant").
		Preload("Room").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByIDForUpdate fetches a booking inside tx with a row lock.
func (r *BookingRepository) GetByIDForUpdate(ctx context.Context, tx *gorm.DB, id int64) (*models.Booking, error) {
	var booking models.Booking
	err := tx.WithContext(ctx).Set("gorm:query_option", "FOR UPDATE").First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// BookingFilter narrows booking listings.
type BookingFilter struct {
	TenantID *int64
	RoomID   *int64
	Status   string
}

// List fetches bookings, newest check-in first.
func (r *BookingRepository) List(ctx context.Context, filter *BookingFilter, offset, limit int) ([]*models.Booking, int64, error) {
	var bookings []*models.Booking
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Booking{})

	if filter != nil {
		if filter.TenantID != nil {
			query = query.Where("tenant_id = ?", *filter.TenantID)
		}
		if filter.RoomID != nil {
			query = query.Where("room_id = ?", *filter.RoomID)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Tenant").
		Preload("Room").
		Order("checkin_date DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// ListByRoom fetches all bookings for a room over its lifetime, newest
// check-in first.
func (r *BookingRepository) ListByRoom(ctx context.Context, roomID int64) ([]*models.Booking, error) {
	var bookings []*models.Booking
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("checkin_date DESC, id DESC").
		Find(&bookings).Error
	return bookings, err
}

// ActiveBedNos returns the bed numbers of the room's active bookings,
// ascending.
func (r *BookingRepository) ActiveBedNos(ctx context.Context, roomID int64) ([]int, error) {
	var bedNos []int
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status = ?", models.BookingStatusActive).
		Order("bed_no ASC").
		Pluck("bed_no", &bedNos).Error
	return bedNos, err
}

// CountActiveByBed counts active bookings holding the bed slot. Run inside
// the creation transaction after the room row is locked.
func (r *BookingRepository) CountActiveByBed(ctx context.Context, tx *gorm.DB, roomID int64, bedNo int) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("bed_no = ?", bedNo).
		Where("status = ?", models.BookingStatusActive).
		Count(&count).Error
	return count, err
}

// CountActive counts bookings with status Active.
func (r *BookingRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusActive).
		Count(&count).Error
	return count, err
}

// Package ledger implements the occupancy ledger: booking lifecycle,
// payment recording and the consistency rules around bed slots.
package ledger

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/errors"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/utils"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/models"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/repository"
)

// LedgerService owns booking and payment state. All writes go through a
// transaction; no operation leaves a partial effect behind.
type LedgerService struct {
	db          *gorm.DB
	bookingRepo *repository.BookingRepository
	paymentRepo *repository.PaymentRepository
	roomRepo    *repository.RoomRepository
	tenantRepo  *repository.TenantRepository
}

// NewLedgerService creates the ledger service.
func NewLedgerService(
	db *gorm.DB,
	bookingRepo *repository.BookingRepository,
	paymentRepo *repository.PaymentRepository,
	roomRepo *repository.RoomRepository,
	tenantRepo *repository.TenantRepository,
) *LedgerService {
	return &LedgerService{
		db:          db,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		roomRepo:    roomRepo,
		tenantRepo:  tenantRepo,
	}
}

// CreateBookingRequest carries validated input for a new booking.
type CreateBookingRequest struct {
	TenantID      int64      `json:"tenant_id" binding:"required"`
	RoomID        int64      `json:"room_id" binding:"required"`
	BedNo         int        `json:"bed_no" binding:"required,min=1"`
	DepositAmount float64    `json:"deposit_amount"`
	CheckinDate   *time.Time `json:"checkin_date,omitempty"`
}

// CreateBooking creates an Active booking for a bed slot.
//
// The occupancy check and the insert run in one transaction with the room
// row locked, so two concurrent callers cannot both observe the bed as
// free. The partial unique index on (room_id, bed_no) for Active rows
// turns any race the lock misses into a storage-level conflict.
func (s *LedgerService) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*models.Booking, error) {
	if req.DepositAmount < 0 {
		return nil, errors.ErrInvalidDeposit
	}

	exists, err := s.tenantRepo.Exists(ctx, req.TenantID)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	if !exists {
		return nil, errors.ErrTenantNotFound
	}

	checkin := utils.Today()
	if req.CheckinDate != nil {
		checkin = utils.DateOnly(*req.CheckinDate)
	}

	booking := &models.Booking{
		TenantID:      req.TenantID,
		RoomID:        req.RoomID,
		BedNo:         req.BedNo,
		CheckinDate:   checkin,
		DepositAmount: req.DepositAmount,
		Status:        models.BookingStatusActive,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := s.roomRepo.GetByIDForUpdate(ctx, tx, req.RoomID)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrRoomNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}

		if req.BedNo < 1 || req.BedNo > room.TotalBeds {
			return errors.ErrInvalidBedNumber
		}

		occupied, err := s.bookingRepo.CountActiveByBed(ctx, tx, req.RoomID, req.BedNo)
		if err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		if occupied > 0 {
			return errors.ErrBedOccupied
		}

		if err := tx.Create(booking).Error; err != nil {
			if isUniqueViolation(err) {
				return errors.ErrBedOccupied
			}
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// CloseBooking transitions a booking to Closed and frees its bed slot.
// Payments are untouched; Closed is terminal.
func (s *LedgerService) CloseBooking(ctx context.Context, bookingID int64, checkoutDate *time.Time) (*models.Booking, error) {
	var closed *models.Booking

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.GetByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrBookingNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}

		if booking.Status == models.BookingStatusClosed {
			return errors.ErrBookingClosed
		}

		checkout := utils.Today()
		if checkoutDate != nil {
			checkout = utils.DateOnly(*checkoutDate)
		}
		if checkout.Before(utils.DateOnly(booking.CheckinDate)) {
			return errors.ErrInvalidDateRange
		}

		if err := tx.Model(&models.Booking{}).
			Where("id = ?", booking.ID).
			Updates(map[string]interface{}{
				"status":        models.BookingStatusClosed,
				"checkout_date": checkout,
			}).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}

		booking.Status = models.BookingStatusClosed
		booking.CheckoutDate = &checkout
		closed = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	return closed, nil
}

// RecordPaymentRequest carries validated input for a payment.
type RecordPaymentRequest struct {
	BookingID   int64      `json:"booking_id" binding:"required"`
	Amount      float64    `json:"amount" binding:"required"`
	Mode        string     `json:"mode"`
	TxnRef      *string    `json:"txn_ref,omitempty"`
	Remarks     *string    `json:"remarks,omitempty"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
}

// RecordPayment appends an immutable payment to an existing booking. The
// booking's status is not altered; payments against Closed bookings are
// allowed (settling dues after checkout).
func (s *LedgerService) RecordPayment(ctx context.Context, req *RecordPaymentRequest) (*models.Payment, error) {
	if req.Amount <= 0 {
		return nil, errors.ErrInvalidAmount
	}

	if _, err := s.bookingRepo.GetByID(ctx, req.BookingID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookingNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	mode := req.Mode
	if mode == "" {
		mode = models.PaymentModeCash
	}
	paymentDate := utils.Today()
	if req.PaymentDate != nil {
		paymentDate = utils.DateOnly(*req.PaymentDate)
	}

	payment := &models.Payment{
		BookingID:   req.BookingID,
		Amount:      req.Amount,
		PaymentDate: paymentDate,
		Mode:        mode,
		TxnRef:      req.TxnRef,
		Remarks:     req.Remarks,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	return payment, nil
}

// RoomOccupancy describes the occupancy of one room.
type RoomOccupancy struct {
	RoomID       int64 `json:"room_id"`
	TotalBeds    int   `json:"total_beds"`
	OccupiedBeds []int `json:"occupied_beds"`
	VacantBeds   []int `json:"vacant_beds"`
}

// GetRoomOccupancy returns the bed numbers covered by an Active booking,
// plus the remaining vacant ones for the booking form.
func (s *LedgerService) GetRoomOccupancy(ctx context.Context, roomID int64) (*RoomOccupancy, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrRoomNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	occupied, err := s.bookingRepo.ActiveBedNos(ctx, roomID)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	occupiedSet := make(map[int]bool, len(occupied))
	for _, bed := range occupied {
		occupiedSet[bed] = true
	}
	vacant := make([]int, 0, room.TotalBeds)
	for bed := 1; bed <= room.TotalBeds; bed++ {
		if !occupiedSet[bed] {
			vacant = append(vacant, bed)
		}
	}

	return &RoomOccupancy{
		RoomID:       roomID,
		TotalBeds:    room.TotalBeds,
		OccupiedBeds: occupied,
		VacantBeds:   vacant,
	}, nil
}

// GetBooking fetches a booking with tenant and room loaded.
func (s *LedgerService) GetBooking(ctx context.Context, bookingID int64) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByIDWithDetails(ctx, bookingID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookingNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return booking, nil
}

// ListBookings fetches bookings matching the filter.
func (s *LedgerService) ListBookings(ctx context.Context, filter *repository.BookingFilter, page, pageSize int) ([]*models.Booking, int64, error) {
	offset := (page - 1) * pageSize
	bookings, total, err := s.bookingRepo.List(ctx, filter, offset, pageSize)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	return bookings, total, nil
}

// ListBookingsForRoom returns a room's bookings over its lifetime.
func (s *LedgerService) ListBookingsForRoom(ctx context.Context, roomID int64) ([]*models.Booking, error) {
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrRoomNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	bookings, err := s.bookingRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return bookings, nil
}

// ListPaymentsForBooking returns a booking's payments in recording order.
func (s *LedgerService) ListPaymentsForBooking(ctx context.Context, bookingID int64) ([]*models.Payment, error) {
	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookingNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	payments, err := s.paymentRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return payments, nil
}

// ListPayments fetches all payments, newest first.
func (s *LedgerService) ListPayments(ctx context.Context, page, pageSize int) ([]*models.Payment, int64, error) {
	offset := (page - 1) * pageSize
	payments, total, err := s.paymentRepo.List(ctx, offset, pageSize)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	return payments, total, nil
}

// isUniqueViolation reports whether err is a uniqueness-constraint
// failure. gorm translates these on postgres; sqlite surfaces them as a
// plain error string.
func isUniqueViolation(err error) bool {
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

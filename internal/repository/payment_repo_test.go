package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/models"
)

func seedPaymentBooking(t *testing.T, db *gorm.DB) *models.Booking {
	room, tenant := seedBookingFixtures(t, db)

	booking := &models.Booking{
		TenantID:    tenant.ID,
		RoomID:      room.ID,
		BedNo:       1,
		CheckinDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:      models.BookingStatusActive,
	}
	require.NoError(t, db.Create(booking).Error)
	return booking
}

func TestPaymentRepository_CreateAndGet(t *testing.T) {
	db := setupBookingTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	booking := seedPaymentBooking(t, db)

	payment := &models.Payment{
		BookingID:   booking.ID,
		Amount:      6000,
		PaymentDate: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		Mode:        models.PaymentModeUPI,
	}

	err := repo.Create(ctx, payment)
	require.NoError(t, err)
	assert.NotZero(t, payment.ID)

	found, err := repo.GetByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, found.BookingID)
	assert.Equal(t, models.PaymentModeUPI, found.Mode)
}

func TestPaymentRepository_ListByBooking_RecordingOrder(t *testing.T) {
	db := setupBookingTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	booking := seedPaymentBooking(t, db)

	// Later payment carries an earlier payment date; recording order must
	// still hold.
	require.NoError(t, repo.Create(ctx, &models.Payment{
		BookingID: booking.ID, Amount: 6000,
		PaymentDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Mode:        models.PaymentModeCash,
	}))
	require.NoError(t, repo.Create(ctx, &models.Payment{
		BookingID: booking.ID, Amount: 500,
		PaymentDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Mode:        models.PaymentModeBank,
	}))

	payments, err := repo.ListByBooking(ctx, booking.ID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, 6000.0, payments[0].Amount)
	assert.Equal(t, 500.0, payments[1].Amount)
}

func TestPaymentRepository_List_Pagination(t *testing.T) {
	db := setupBookingTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	booking := seedPaymentBooking(t, db)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &models.Payment{
			BookingID: booking.ID, Amount: float64(1000 * (i + 1)),
			PaymentDate: time.Date(2025, 3, i+1, 0, 0, 0, 0, time.UTC),
			Mode:        models.PaymentModeCash,
		}))
	}

	page, total, err := repo.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	// Newest payment date first.
	assert.Equal(t, 5000.0, page[0].Amount)
	assert.Equal(t, 4000.0, page[1].Amount)
}

func TestPaymentRepository_SumAmount(t *testing.T) {
	db := setupBookingTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	// No payments yet: COALESCE keeps the sum at zero instead of NULL.
	total, err := repo.SumAmount(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	booking := seedPaymentBooking(t, db)
	require.NoError(t, repo.Create(ctx, &models.Payment{
		BookingID: booking.ID, Amount: 6000,
		PaymentDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Mode:        models.PaymentModeCash,
	}))
	require.NoError(t, repo.Create(ctx, &models.Payment{
		BookingID: booking.ID, Amount: 1500.50,
		PaymentDate: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		Mode:        models.PaymentModeUPI,
	}))

	total, err = repo.SumAmount(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 7500.50, total, 0.001)
}

func TestPaymentRepository_SumAmountByBooking(t *testing.T) {
	db := setupBookingTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	booking := seedPaymentBooking(t, db)
	other := seedPaymentBooking(t, db)

	require.NoError(t, repo.Create(ctx, &models.Payment{
		BookingID: booking.ID, Amount: 6000,
		PaymentDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Mode:        models.PaymentModeCash,
	}))
	require.NoError(t, repo.Create(ctx, &models.Payment{
		BookingID: other.ID, Amount: 999,
		PaymentDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Mode:        models.PaymentModeCash,
	}))

	total, err := repo.SumAmountByBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.InDelta(t, 6000.0, total, 0.001)

	total, err = repo.SumAmountByBooking(ctx, 99999)
	require.NoError(t, err)
	assert.Zero(t, total)
}

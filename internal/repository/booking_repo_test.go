package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/models"
)

func setupBookingTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.PG{}, &models.Room{}, &models.Tenant{}, &models.Booking{}, &models.Payment{})
	require.NoError(t, err)

	return db
}

func seedBookingFixtures(t *testing.T, db *gorm.DB) (*models.Room, *models.Tenant) {
	pg := &models.PG{Name: "Sunrise PG", Address: "Main Road"}
	require.NoError(t, db.Create(pg).Error)

	room := &models.Room{
		PGID:       &pg.ID,
		RoomNo:     "101",
		RoomType:   "Shared",
		TotalBeds:  3,
		RentPerBed: 6000,
	}
	require.NoError(t, db.Create(room).Error)

	tenant := &models.Tenant{Name: "Asha", Phone: "9876543210"}
	require.NoError(t, db.Create(tenant).Error)

	return room, tenant
}

func TestBookingRepository_CreateAndGet(t *testing.T) {
	db := setupBookingTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	room, tenant := seedBookingFixtures(t, db)

	booking := &models.Booking{
		TenantID:      tenant.ID,
		RoomID:        room.ID,
		BedNo:         1,
		CheckinDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DepositAmount: 5000,
		Status:        models.BookingStatusActive,
	}

	err := repo.Create(ctx, booking)
	require.NoError(t, err)
	assert.NotZero(t, booking.ID)

	found, err := repo.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, found.ID)
	assert.Equal(t, 1, found.BedNo)
}

func TestBookingRepository_GetByIDWithDetails(t *testing.T) {
	db := setupBookingTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	room, tenant := seedBookingFixtures(t, db)

	booking := &models.Booking{
		TenantID:    tenant.ID,
		RoomID:      room.ID,
		BedNo:       2,
		CheckinDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:      models.BookingStatusActive,
	}
	require.NoError(t, repo.Create(ctx, booking))

	found, err := repo.GetByIDWithDetails(ctx, booking.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Tenant)
	require.NotNil(t, found.Room)
	assert.Equal(t, "Asha", found.Tenant.Name)
	assert.Equal(t, "101", found.Room.RoomNo)
}

func TestBookingRepository_List_FilterByStatus(t *testing.T) {
	db := setupBookingTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	room, tenant := seedBookingFixtures(t, db)

	checkin := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	checkout := checkin.AddDate(0, 1, 0)
	require.NoError(t, repo.Create(ctx, &models.Booking{
		TenantID: tenant.ID, RoomID: room.ID, BedNo: 1,
		CheckinDate: checkin, Status: models.BookingStatusActive,
	}))
	require.NoError(t, repo.Create(ctx, &models.Booking{
		TenantID: tenant.ID, RoomID: room.ID, BedNo: 2,
		CheckinDate: checkin, CheckoutDate: &checkout,
		Status: models.BookingStatusClosed,
	}))

	active, total, err := repo.List(ctx, &BookingFilter{Status: models.BookingStatusActive}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, active, 1)
	assert.Equal(t, 1, active[0].BedNo)

	all, total, err := repo.List(ctx, nil, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)
}

func TestBookingRepository_List_FilterByTenantAndRoom(t *testing.T) {
	db := setupBookingTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	room, tenant := seedBookingFixtures(t, db)

	otherTenant := &models.Tenant{Name: "Ravi", Phone: "9123456780"}
	require.NoError(t, db.Create(otherTenant).Error)

	checkin := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &models.Booking{
		TenantID: tenant.ID, RoomID: room.ID, BedNo: 1,
		CheckinDate: checkin, Status: models.BookingStatusActive,
	}))
	require.NoError(t, repo.Create(ctx, &models.Booking{
		TenantID: otherTenant.ID, RoomID: room.ID, BedNo: 2,
		CheckinDate: checkin, Status: models.BookingStatusActive,
	}))

	byTenant, total, err := repo.List(ctx, &BookingFilter{TenantID: &otherTenant.ID}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, byTenant, 1)
	assert.Equal(t, otherTenant.ID, byTenant[0].TenantID)
}

func TestBookingRepository_ActiveBedNos(t *testing.T) {
	db := setupBookingTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	room, tenant := seedBookingFixtures(t, db)

	checkin := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	checkout := checkin.AddDate(0, 1, 0)
	require.NoError(t, repo.Create(ctx, &models.Booking{
		TenantID: tenant.ID, RoomID: room.ID, BedNo: 3,
		CheckinDate: checkin, Status: models.BookingStatusActive,
	}))
	require.NoError(t, repo.Create(ctx, &models.Booking{
		TenantID: tenant.ID, RoomID: room.ID, BedNo: 1,
		CheckinDate: checkin, Status: models.BookingStatusActive,
	}))
	require.NoError(t, repo.Create(ctx, &models.Booking{
		TenantID: tenant.ID, RoomID: room.ID, BedNo: 2,
		CheckinDate: checkin, CheckoutDate: &checkout,
		Status: models.BookingStatusClosed,
	}))

	bedNos, err := repo.ActiveBedNos(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, bedNos)
}

func TestBookingRepository_CountActiveByBed(t *testing.T) {
	db := setupBookingTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	room, tenant := seedBookingFixtures(t, db)

	checkin := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &models.Booking{
		TenantID: tenant.ID, RoomID: room.ID, BedNo: 1,
		CheckinDate: checkin, Status: models.BookingStatusActive,
	}))

	count, err := repo.CountActiveByBed(ctx, db, room.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.CountActiveByBed(ctx, db, room.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestBookingRepository_CountActive(t *testing.T) {
	db := setupBookingTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	room, tenant := seedBookingFixtures(t, db)

	count, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	checkin := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &models.Booking{
		TenantID: tenant.ID, RoomID: room.ID, BedNo: 1,
		CheckinDate: checkin, Status: models.BookingStatusActive,
	}))

	count, err = repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

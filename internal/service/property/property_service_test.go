package property_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/database"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/errors"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/repository"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/service/property"
)

func setupPropertyTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createTestPropertyService(db *gorm.DB) *property.PropertyService {
	return property.NewPropertyService(
		db,
		repository.NewPGRepository(db),
		repository.NewRoomRepository(db),
	)
}

func TestCreatePG(t *testing.T) {
	db := setupPropertyTestDB(t)
	svc := createTestPropertyService(db)

	pg, err := svc.CreatePG(context.Background(), &property.CreatePGRequest{
		Name:    "Central PG",
		Address: "MG Road, Bengaluru",
	})
	require.NoError(t, err)
	assert.NotZero(t, pg.ID)
	assert.Equal(t, "Central PG", pg.Name)
}

func TestGetPG_WithRooms(t *testing.T) {
	db := setupPropertyTestDB(t)
	svc := createTestPropertyService(db)
	ctx := context.Background()

	pg, err := svc.CreatePG(ctx, &property.CreatePGRequest{Name: "Central PG"})
	require.NoError(t, err)

	for _, roomNo := range []string{"102", "101"} {
		_, err := svc.CreateRoom(ctx, &property.CreateRoomRequest{
			PGID:       &pg.ID,
			RoomNo:     roomNo,
			TotalBeds:  2,
			RentPerBed: 6000,
		})
		require.NoError(t, err)
	}

	got, err := svc.GetPG(ctx, pg.ID)
	require.NoError(t, err)
	require.Len(t, got.Rooms, 2)
	assert.Equal(t, "101", got.Rooms[0].RoomNo)
	assert.Equal(t, "102", got.Rooms[1].RoomNo)
}

func TestGetPG_NotFound(t *testing.T) {
	db := setupPropertyTestDB(t)
	svc := createTestPropertyService(db)

	_, err := svc.GetPG(context.Background(), 9999)
	assert.ErrorIs(t, err, errors.ErrPGNotFound)
}

func TestCreateRoom_Validation(t *testing.T) {
	db := setupPropertyTestDB(t)
	svc := createTestPropertyService(db)
	ctx := context.Background()

	_, err := svc.CreateRoom(ctx, &property.CreateRoomRequest{
		RoomNo:    "101",
		TotalBeds: 0,
	})
	assert.ErrorIs(t, err, errors.ErrInvalidBedCount)

	_, err = svc.CreateRoom(ctx, &property.CreateRoomRequest{
		RoomNo:     "101",
		TotalBeds:  2,
		RentPerBed: -100,
	})
	assert.ErrorIs(t, err, errors.ErrInvalidRent)
}

func TestCreateRoom_UnknownPG(t *testing.T) {
	db := setupPropertyTestDB(t)
	svc := createTestPropertyService(db)

	pgID := int64(9999)
	_, err := svc.CreateRoom(context.Background(), &property.CreateRoomRequest{
		PGID:      &pgID,
		RoomNo:    "101",
		TotalBeds: 2,
	})
	assert.ErrorIs(t, err, errors.ErrPGNotFound)
}

func TestCreateRoom_UnassignedInventory(t *testing.T) {
	db := setupPropertyTestDB(t)
	svc := createTestPropertyService(db)

	room, err := svc.CreateRoom(context.Background(), &property.CreateRoomRequest{
		RoomNo:     "A-1",
		TotalBeds:  3,
		RentPerBed: 5000,
	})
	require.NoError(t, err)
	assert.Nil(t, room.PGID)
}

func TestListRooms_FilterByPG(t *testing.T) {
	db := setupPropertyTestDB(t)
	svc := createTestPropertyService(db)
	ctx := context.Background()

	pg, err := svc.CreatePG(ctx, &property.CreatePGRequest{Name: "Central PG"})
	require.NoError(t, err)

	_, err = svc.CreateRoom(ctx, &property.CreateRoomRequest{
		PGID:      &pg.ID,
		RoomNo:    "101",
		TotalBeds: 2,
	})
	require.NoError(t, err)
	_, err = svc.CreateRoom(ctx, &property.CreateRoomRequest{
		RoomNo:    "B-1",
		TotalBeds: 1,
	})
	require.NoError(t, err)

	rooms, total, err := svc.ListRooms(ctx, &pg.ID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rooms, 1)
	assert.Equal(t, "101", rooms[0].RoomNo)

	_, total, err = svc.ListRooms(ctx, nil, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

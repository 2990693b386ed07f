package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/models"
)

func setupPropertyTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.PG{}, &models.Room{})
	require.NoError(t, err)

	return db
}

func TestPGRepository_CreateAndGet(t *testing.T) {
	db := setupPropertyTestDB(t)
	repo := NewPGRepository(db)
	ctx := context.Background()

	pg := &models.PG{Name: "Sunrise PG", Address: "MG Road"}
	err := repo.Create(ctx, pg)
	require.NoError(t, err)
	assert.NotZero(t, pg.ID)

	found, err := repo.GetByID(ctx, pg.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunrise PG", found.Name)
}

func TestPGRepository_GetByIDWithRooms(t *testing.T) {
	db := setupPropertyTestDB(t)
	repo := NewPGRepository(db)
	ctx := context.Background()

	pg := &models.PG{Name: "Sunrise PG", Address: "MG Road"}
	require.NoError(t, repo.Create(ctx, pg))

	// Inserted out of order; the preload sorts by room number.
	require.NoError(t, db.Create(&models.Room{PGID: &pg.ID, RoomNo: "102", TotalBeds: 2}).Error)
	require.NoError(t, db.Create(&models.Room{PGID: &pg.ID, RoomNo: "101", TotalBeds: 3}).Error)

	found, err := repo.GetByIDWithRooms(ctx, pg.ID)
	require.NoError(t, err)
	require.Len(t, found.Rooms, 2)
	assert.Equal(t, "101", found.Rooms[0].RoomNo)
	assert.Equal(t, "102", found.Rooms[1].RoomNo)
}

func TestPGRepository_ListAndCount(t *testing.T) {
	db := setupPropertyTestDB(t)
	repo := NewPGRepository(db)
	ctx := context.Background()

	for _, name := range []string{"PG A", "PG B", "PG C"} {
		require.NoError(t, repo.Create(ctx, &models.PG{Name: name}))
	}

	page, total, err := repo.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.Equal(t, "PG A", page[0].Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestRoomRepository_CreateAndGet(t *testing.T) {
	db := setupPropertyTestDB(t)
	repo := NewRoomRepository(db)
	ctx := context.Background()

	pg := &models.PG{Name: "Sunrise PG"}
	require.NoError(t, db.Create(pg).Error)

	room := &models.Room{
		PGID:       &pg.ID,
		RoomNo:     "101",
		RoomType:   "Shared",
		TotalBeds:  3,
		RentPerBed: 6000,
	}
	err := repo.Create(ctx, room)
	require.NoError(t, err)
	assert.NotZero(t, room.ID)

	found, err := repo.GetByIDWithPG(ctx, room.ID)
	require.NoError(t, err)
	require.NotNil(t, found.PG)
	assert.Equal(t, "Sunrise PG", found.PG.Name)
}

func TestRoomRepository_CreateUnassigned(t *testing.T) {
	db := setupPropertyTestDB(t)
	repo := NewRoomRepository(db)
	ctx := context.Background()

	// A room can exist before it is assigned to a property.
	room := &models.Room{RoomNo: "201", TotalBeds: 2, RentPerBed: 7000}
	require.NoError(t, repo.Create(ctx, room))

	found, err := repo.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Nil(t, found.PGID)
}

func TestRoomRepository_List_FilterByPG(t *testing.T) {
	db := setupPropertyTestDB(t)
	repo := NewRoomRepository(db)
	ctx := context.Background()

	pgA := &models.PG{Name: "PG A"}
	pgB := &models.PG{Name: "PG B"}
	require.NoError(t, db.Create(pgA).Error)
	require.NoError(t, db.Create(pgB).Error)

	require.NoError(t, repo.Create(ctx, &models.Room{PGID: &pgA.ID, RoomNo: "101", TotalBeds: 2}))
	require.NoError(t, repo.Create(ctx, &models.Room{PGID: &pgA.ID, RoomNo: "102", TotalBeds: 2}))
	require.NoError(t, repo.Create(ctx, &models.Room{PGID: &pgB.ID, RoomNo: "201", TotalBeds: 1}))

	rooms, total, err := repo.List(ctx, 0, 10, &pgA.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].RoomNo)

	all, total, err := repo.List(ctx, 0, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)
}

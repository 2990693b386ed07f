// Package property manages PG properties and their rooms.
package property

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/errors"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/models"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/repository"
)

// PropertyService manages the property registry.
type PropertyService struct {
	db       *gorm.DB
	pgRepo   *repository.PGRepository
	roomRepo *repository.RoomRepository
}

// NewPropertyService creates the property service.
func NewPropertyService(
	db *gorm.DB,
	pgRepo *repository.PGRepository,
	roomRepo *repository.RoomRepository,
) *PropertyService {
	return &PropertyService{
		db:       db,
		pgRepo:   pgRepo,
		roomRepo: roomRepo,
	}
}

// CreatePGRequest carries a new property.
type CreatePGRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// CreatePG registers a property.
func (s *PropertyService) CreatePG(ctx context.Context, req *CreatePGRequest) (*models.PG, error) {
	pg := &models.PG{
		Name:    req.Name,
		Address: req.Address,
	}
	if err := s.pgRepo.Create(ctx, pg); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return pg, nil
}

// GetPG fetches a property with its rooms.
func (s *PropertyService) GetPG(ctx context.Context, pgID int64) (*models.PG, error) {
	pg, err := s.pgRepo.GetByIDWithRooms(ctx, pgID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrPGNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return pg, nil
}

// ListPGs fetches properties.
func (s *PropertyService) ListPGs(ctx context.Context, page, pageSize int) ([]*models.PG, int64, error) {
	offset := (page - 1) * pageSize
	pgs, total, err := s.pgRepo.List(ctx, offset, pageSize)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	return pgs, total, nil
}

// CreateRoomRequest carries a new room. PGID is optional: rooms may be
// registered as unassigned inventory.
type CreateRoomRequest struct {
	PGID       *int64  `json:"pg_id,omitempty"`
	RoomNo     string  `json:"room_no" binding:"required"`
	RoomType   string  `json:"room_type"`
	TotalBeds  int     `json:"total_beds" binding:"required"`
	RentPerBed float64 `json:"rent_per_bed"`
}

// CreateRoom registers a room.
func (s *PropertyService) CreateRoom(ctx context.Context, req *CreateRoomRequest) (*models.Room, error) {
	if req.TotalBeds < 1 {
		return nil, errors.ErrInvalidBedCount
	}
	if req.RentPerBed < 0 {
		return nil, errors.ErrInvalidRent
	}

	if req.PGID != nil {
		if _, err := s.pgRepo.GetByID(ctx, *req.PGID); err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.ErrPGNotFound
			}
			return nil, errors.ErrDatabaseError.WithError(err)
		}
	}

	room := &models.Room{
		PGID:       req.PGID,
		RoomNo:     req.RoomNo,
		RoomType:   req.RoomType,
		TotalBeds:  req.TotalBeds,
		RentPerBed: req.RentPerBed,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return room, nil
}

// GetRoom fetches a room with its property.
func (s *PropertyService) GetRoom(ctx context.Context, roomID int64) (*models.Room, error) {
	room, err := s.roomRepo.GetByIDWithPG(ctx, roomID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrRoomNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return room, nil
}

// ListRooms fetches rooms, optionally narrowed to one property.
func (s *PropertyService) ListRooms(ctx context.Context, pgID *int64, page, pageSize int) ([]*models.Room, int64, error) {
	offset := (page - 1) * pageSize
	rooms, total, err := s.roomRepo.List(ctx, offset, pageSize, pgID)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	return rooms, total, nil
}

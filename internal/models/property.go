package models

import (
	"time"
)

// PG is a paying-guest property containing rooms.
type PG struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(150);not null" json:"name"`
	Address   string    `gorm:"type:text" json:"address"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Rooms []Room `gorm:"foreignKey:PGID" json:"rooms,omitempty"`
}

// TableName returns the table name.
func (PG) TableName() string {
	return "pgs"
}

// Room is a lettable room inside a PG. PGID is nullable: a room may exist
// as unassigned inventory before being attached to a property.
type Room struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PGID       *int64    `gorm:"index" json:"pg_id,omitempty"`
	RoomNo     string    `gorm:"type:varchar(50);not null" json:"room_no"`
	RoomType   string    `gorm:"type:varchar(50)" json:"room_type"`
	TotalBeds  int       `gorm:"not null;default:1" json:"total_beds"`
	RentPerBed float64   `gorm:"type:decimal(12,2);not null;default:0" json:"rent_per_bed"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	PG       *PG       `gorm:"foreignKey:PGID" json:"pg,omitempty"`
	Bookings []Booking `gorm:"foreignKey:RoomID" json:"bookings,omitempty"`
}

// TableName returns the table name.
func (Room) TableName() string {
	return "rooms"
}

// MaxRevenue returns the room's maximum monthly revenue capacity.
func (r *Room) MaxRevenue() float64 {
	return r.RentPerBed * float64(r.TotalBeds)
}

package models

import (
	"time"
)

// Booking links a tenant to a bed slot (room, bed number). At most one
// Active booking may exist per bed slot; the constraint is enforced in the
// ledger service and backstopped by a partial unique index.
type Booking struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	TenantID      int64      `gorm:"index;not null" json:"tenant_id"`
	RoomID        int64      `gorm:"index;not null" json:"room_id"`
	BedNo         int        `gorm:"not null;default:1" json:"bed_no"`
	CheckinDate   time.Time  `gorm:"type:date;not null" json:"checkin_date"`
	CheckoutDate  *time.Time `gorm:"type:date" json:"checkout_date,omitempty"`
	DepositAmount float64    `gorm:"type:decimal(12,2);not null;default:0" json:"deposit_amount"`
	Status        string     `gorm:"type:varchar(30);not null;default:'Active'" json:"status"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Tenant   *Tenant   `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Room     *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Payments []Payment `gorm:"foreignKey:BookingID" json:"payments,omitempty"`
}

// TableName returns the table name.
func (Booking) TableName() string {
	return "bookings"
}

// Booking statuses. Active -> Closed; Closed is terminal.
const (
	BookingStatusActive = "Active"
	BookingStatusClosed = "Closed"
)

// IsActive reports whether the booking still occupies its bed slot.
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusActive
}

package models

import (
	"time"
)

// Payment is an immutable financial record against a booking. Rows are only
// ever inserted; no update or delete operation exists.
type Payment struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID   int64     `gorm:"index;not null" json:"booking_id"`
	Amount      float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentDate time.Time `gorm:"type:date;not null" json:"payment_date"`
	Mode        string    `gorm:"type:varchar(50);not null" json:"mode"`
	TxnRef      *string   `gorm:"type:varchar(200)" json:"txn_ref,omitempty"`
	Remarks     *string   `gorm:"type:varchar(255)" json:"remarks,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Booking *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}

// TableName returns the table name.
func (Payment) TableName() string {
	return "payments"
}

// Common payment modes; the column is free text, these are the values the
// booking form offers.
const (
	PaymentModeCash = "Cash"
	PaymentModeBank = "Bank"
	PaymentModeUPI  = "UPI"
)

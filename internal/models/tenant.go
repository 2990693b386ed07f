package models

import (
	"time"
)

// Tenant is a person who may occupy a bed. Independent of any room until a
// booking links them. IDNumberEncrypted holds the AES-encrypted
// identity-document number; responses expose a masked form only.
type Tenant struct {
	ID                int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string    `gorm:"type:varchar(150);not null" json:"name"`
	Phone             string    `gorm:"type:varchar(30);not null" json:"phone"`
	Email             *string   `gorm:"type:varchar(150)" json:"email,omitempty"`
	IDType            *string   `gorm:"type:varchar(50)" json:"id_type,omitempty"`
	IDNumberEncrypted *string   `gorm:"type:text" json:"-"`
	Address           *string   `gorm:"type:text" json:"address,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Bookings []Booking `gorm:"foreignKey:TenantID" json:"bookings,omitempty"`
}

// TableName returns the table name.
func (Tenant) TableName() string {
	return "tenants"
}

// Package models defines the data models.
package models

import (
	"time"
)

// User is an operator account gating access to the ledger.
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(120);not null" json:"name"`
	Email        string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	Phone        *string   `gorm:"type:varchar(30)" json:"phone,omitempty"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         string    `gorm:"type:varchar(50);not null;default:'Manager'" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName returns the table name.
func (User) TableName() string {
	return "users"
}

// User roles
const (
	RoleOwner   = "Owner"
	RoleManager = "Manager"
	RoleTenant  = "Tenant"
)

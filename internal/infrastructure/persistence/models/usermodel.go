package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/shared/constants"
)

// UserModel is a resident row.
type UserModel struct {
	ID            uint   `gorm:"primaryKey"`
	FullName      string `gorm:"size:255;not null"`
	PhoneNumber   string `gorm:"size:20;not null;uniqueIndex:uk_users_phone_number"`
	SiteID        uint   `gorm:"not null;index"`
	BlockID       *uint  `gorm:"index"`
	ApartmentID   *uint  `gorm:"index"`
	ApartmentNo   string `gorm:"size:20"`
	ResidentType  string `gorm:"size:10;not null;default:'OWNER'"`
	Plates        string `gorm:"size:255"`
	PasswordHash  string `gorm:"size:255"`
	AccountStatus string `gorm:"size:10;not null;default:'ACTIVE'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}

// RosterRow is a resident joined with its block name.
type RosterRow struct {
	UserModel
	BlockName string
}

package models

import (
	"time"

	"github.com/sitedesk/sitedesk/internal/shared/constants"
)

// ComplaintModel is owned by the complaint module; this service only removes
// rows together with their resident.
type ComplaintModel struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	SiteID      uint   `gorm:"not null;index"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"size:20;not null;default:'OPEN'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ComplaintModel) TableName() string {
	return constants.TableComplaints
}

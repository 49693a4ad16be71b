package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/shared/constants"
)

// BlockModel rows are always hard-deleted, so the site/name key also covers
// rows that would otherwise only be soft-deleted.
type BlockModel struct {
	ID             uint   `gorm:"primaryKey"`
	SiteID         uint   `gorm:"not null;uniqueIndex:uk_blocks_site_name,priority:1"`
	Name           string `gorm:"size:100;not null;uniqueIndex:uk_blocks_site_name,priority:2"`
	Description    string `gorm:"size:500"`
	ApartmentCount int    `gorm:"not null;default:0"`
	ResidentCount  int    `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (BlockModel) TableName() string {
	return constants.TableBlocks
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/shared/constants"
)

type SiteModel struct {
	ID        uint            `gorm:"primaryKey"`
	Code      string          `gorm:"size:16;not null;uniqueIndex:uk_sites_code"`
	Name      string          `gorm:"size:255;not null"`
	DueAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (SiteModel) TableName() string {
	return constants.TableSites
}

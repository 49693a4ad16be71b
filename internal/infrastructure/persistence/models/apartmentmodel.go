package models

import (
	"time"

	"github.com/sitedesk/sitedesk/internal/shared/constants"
)

type ApartmentModel struct {
	ID            uint   `gorm:"primaryKey"`
	BlockID       uint   `gorm:"not null;uniqueIndex:uk_apartments_block_no,priority:1"`
	ApartmentNo   string `gorm:"size:20;not null;uniqueIndex:uk_apartments_block_no,priority:2"`
	ResidentCount int    `gorm:"not null;default:0"`
	IsOccupied    bool   `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ApartmentModel) TableName() string {
	return constants.TableApartments
}

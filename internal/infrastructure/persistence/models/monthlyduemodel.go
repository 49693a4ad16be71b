package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitedesk/sitedesk/internal/shared/constants"
)

type MonthlyDueModel struct {
	ID            uint            `gorm:"primaryKey"`
	UserID        uint            `gorm:"not null;uniqueIndex:uk_monthly_dues_user_period,priority:1"`
	SiteID        uint            `gorm:"not null;uniqueIndex:uk_monthly_dues_user_period,priority:2"`
	Month         int             `gorm:"not null;uniqueIndex:uk_monthly_dues_user_period,priority:3"`
	Year          int             `gorm:"not null;uniqueIndex:uk_monthly_dues_user_period,priority:4"`
	ApartmentID   *uint           `gorm:"index"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DueDate       time.Time       `gorm:"not null"`
	PaymentStatus string          `gorm:"size:10;not null;default:'UNPAID'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (MonthlyDueModel) TableName() string {
	return constants.TableMonthlyDues
}

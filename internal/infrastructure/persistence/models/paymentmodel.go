package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitedesk/sitedesk/internal/shared/constants"
)

// PaymentModel is owned by the dues ledger; this service only removes rows.
type PaymentModel struct {
	ID           uint            `gorm:"primaryKey"`
	UserID       uint            `gorm:"not null;index"`
	SiteID       uint            `gorm:"not null;index"`
	MonthlyDueID *uint           `gorm:"index"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaidAt       time.Time
	CreatedAt    time.Time
}

func (PaymentModel) TableName() string {
	return constants.TablePayments
}

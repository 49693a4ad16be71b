// Package due holds the monthly due record seeded for residents.
package due

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyDue is unique per (user, site, month, year).
type MonthlyDue struct {
	id            uint
	userID        uint
	apartmentID   *uint
	siteID        uint
	period        Period
	amount        decimal.Decimal
	dueDate       time.Time
	paymentStatus PaymentStatus
	createdAt     time.Time
	updatedAt     time.Time
}

func NewMonthlyDue(
	userID uint,
	apartmentID *uint,
	siteID uint,
	period Period,
	amount decimal.Decimal,
	dueDate time.Time,
	status PaymentStatus,
) (*MonthlyDue, error) {
	if userID == 0 || siteID == 0 {
		return nil, fmt.Errorf("user and site are required")
	}
	if _, err := NewPeriod(period.Month, period.Year); err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if !status.IsValid() {
		return nil, ErrInvalidPaymentStatus.WithDetails(string(status))
	}

	now := time.Now().UTC()
	return &MonthlyDue{
		userID:        userID,
		apartmentID:   apartmentID,
		siteID:        siteID,
		period:        period,
		amount:        amount,
		dueDate:       dueDate,
		paymentStatus: status,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructMonthlyDue(
	id, userID uint,
	apartmentID *uint,
	siteID uint,
	period Period,
	amount decimal.Decimal,
	dueDate time.Time,
	status PaymentStatus,
	createdAt, updatedAt time.Time,
) (*MonthlyDue, error) {
	if id == 0 {
		return nil, fmt.Errorf("monthly due ID cannot be zero")
	}
	return &MonthlyDue{
		id:            id,
		userID:        userID,
		apartmentID:   apartmentID,
		siteID:        siteID,
		period:        period,
		amount:        amount,
		dueDate:       dueDate,
		paymentStatus: status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (d *MonthlyDue) ID() uint                     { return d.id }
func (d *MonthlyDue) UserID() uint                 { return d.userID }
func (d *MonthlyDue) ApartmentID() *uint           { return d.apartmentID }
func (d *MonthlyDue) SiteID() uint                 { return d.siteID }
func (d *MonthlyDue) Period() Period               { return d.period }
func (d *MonthlyDue) Amount() decimal.Decimal      { return d.amount }
func (d *MonthlyDue) DueDate() time.Time           { return d.dueDate }
func (d *MonthlyDue) PaymentStatus() PaymentStatus { return d.paymentStatus }
func (d *MonthlyDue) CreatedAt() time.Time         { return d.createdAt }
func (d *MonthlyDue) UpdatedAt() time.Time         { return d.updatedAt }

func (d *MonthlyDue) SetID(id uint) {
	d.id = id
}

package due

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod(t *testing.T) {
	p, err := NewPeriod(3, 2025)
	require.NoError(t, err)
	assert.Equal(t, "2025-03", p.String())

	_, err = NewPeriod(13, 2025)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
	_, err = NewPeriod(0, 2025)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestNewMonthlyDue(t *testing.T) {
	period := Period{Month: 3, Year: 2025}
	dueDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	aptID := uint(5)

	d, err := NewMonthlyDue(1, &aptID, 2, period, decimal.NewFromInt(750), dueDate, PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusPaid, d.PaymentStatus())
	assert.Equal(t, uint(5), *d.ApartmentID())

	_, err = NewMonthlyDue(1, nil, 2, period, decimal.NewFromInt(-1), dueDate, PaymentStatusUnpaid)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewMonthlyDue(1, nil, 2, period, decimal.Zero, dueDate, PaymentStatus("LATE"))
	assert.ErrorIs(t, err, ErrInvalidPaymentStatus)

	_, err = NewMonthlyDue(0, nil, 2, period, decimal.Zero, dueDate, PaymentStatusUnpaid)
	assert.Error(t, err)
}

package due

import "fmt"

type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "UNPAID"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusOverdue PaymentStatus = "OVERDUE"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusPartial, PaymentStatusOverdue:
		return true
	}
	return false
}

// Period is a calendar month.
type Period struct {
	Month int
	Year  int
}

func NewPeriod(month, year int) (Period, error) {
	p := Period{Month: month, Year: year}
	if month < 1 || month > 12 || year < 2000 {
		return Period{}, ErrInvalidPeriod.WithDetails(p.String())
	}
	return p, nil
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

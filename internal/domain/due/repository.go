package due

import "context"

type Repository interface {
	// Upsert inserts the due or, when one exists for the same user, site and
	// period, overwrites its apartment, amount, due date and status.
	Upsert(ctx context.Context, d *MonthlyDue) error
	GetByUserAndPeriod(ctx context.Context, userID, siteID uint, period Period) (*MonthlyDue, error)
	// FindApartmentStatus returns the payment status of a due for the same
	// apartment, site and period held by another non-deleted ACTIVE resident.
	FindApartmentStatus(ctx context.Context, apartmentID, siteID uint, period Period, excludeUserID uint) (PaymentStatus, bool, error)
	DeleteByUserIDs(ctx context.Context, userIDs []uint) error
}

// PaymentRepository is the slice of the payment ledger this service touches:
// payments are removed together with their resident.
type PaymentRepository interface {
	DeleteByUserIDs(ctx context.Context, userIDs []uint) error
}

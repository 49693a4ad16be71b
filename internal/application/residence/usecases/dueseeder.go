package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sitedesk/sitedesk/internal/domain/due"
	"github.com/sitedesk/sitedesk/internal/domain/resident"
	"github.com/sitedesk/sitedesk/internal/domain/site"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// DueSeeder creates the current month's due for a new resident.
type DueSeeder struct {
	siteRepo      site.Repository
	dueRepo       due.Repository
	defaultAmount decimal.Decimal
	dueDay        int
	logger        logger.Interface
}

// NewDueSeeder: defaultAmount applies to sites without their own due amount;
// dueDay is the day of month dues fall due.
func NewDueSeeder(
	siteRepo site.Repository,
	dueRepo due.Repository,
	defaultAmount decimal.Decimal,
	dueDay int,
	logger logger.Interface,
) *DueSeeder {
	return &DueSeeder{
		siteRepo:      siteRepo,
		dueRepo:       dueRepo,
		defaultAmount: defaultAmount,
		dueDay:        dueDay,
		logger:        logger,
	}
}

// Seed upserts the resident's due for the current period. A resident who
// shares an apartment inherits the payment status already recorded for it
// this period; everyone else starts UNPAID.
func (s *DueSeeder) Seed(ctx context.Context, r *resident.Resident) error {
	month, year := biztime.CurrentPeriod()
	period, err := due.NewPeriod(month, year)
	if err != nil {
		return err
	}

	st, err := s.siteRepo.GetByID(ctx, r.SiteID())
	if err != nil {
		return err
	}
	if st == nil {
		return site.ErrSiteNotFound
	}

	status := due.PaymentStatusUnpaid
	if _, apartmentID := r.Placement(); apartmentID != 0 {
		inherited, found, err := s.dueRepo.FindApartmentStatus(ctx, apartmentID, r.SiteID(), period, r.ID())
		if err != nil {
			return fmt.Errorf("failed to look up apartment due status: %w", err)
		}
		if found {
			status = inherited
		}
	}

	d, err := due.NewMonthlyDue(
		r.ID(),
		r.ApartmentID(),
		r.SiteID(),
		period,
		st.EffectiveDueAmount(s.defaultAmount),
		biztime.DueDate(year, month, s.dueDay),
		status,
	)
	if err != nil {
		return err
	}
	if err := s.dueRepo.Upsert(ctx, d); err != nil {
		return err
	}

	s.logger.Debugw("monthly due seeded",
		"user_id", r.ID(), "period", period.String(), "payment_status", status)
	return nil
}

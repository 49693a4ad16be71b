package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	"github.com/sitedesk/sitedesk/internal/domain/due"
)

// dependentsCleaner hard-deletes the rows other modules keep per resident.
type dependentsCleaner struct {
	dueRepo       due.Repository
	paymentRepo   due.PaymentRepository
	complaintRepo complaint.Repository
}

func (c *dependentsCleaner) steps() []func(ctx context.Context, userIDs []uint) error {
	return []func(ctx context.Context, userIDs []uint) error{
		c.dueRepo.DeleteByUserIDs,
		c.paymentRepo.DeleteByUserIDs,
		c.complaintRepo.DeleteByUserIDs,
	}
}

// deleteConcurrently runs the deletes in parallel and returns the first
// error. Use it outside transactions only.
func (c *dependentsCleaner) deleteConcurrently(ctx context.Context, userIDs []uint) error {
	if len(userIDs) == 0 {
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, step := range c.steps() {
		step := step
		g.Go(func() error {
			return step(gctx, userIDs)
		})
	}
	return g.Wait()
}

// deleteInOrder runs the deletes one after another on the transaction
// carried by ctx.
func (c *dependentsCleaner) deleteInOrder(ctx context.Context, userIDs []uint) error {
	if len(userIDs) == 0 {
		return nil
	}
	for _, step := range c.steps() {
		if err := step(ctx, userIDs); err != nil {
			return err
		}
	}
	return nil
}

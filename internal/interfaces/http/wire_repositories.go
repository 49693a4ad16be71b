package http

import (
	"github.com/sitedesk/sitedesk/internal/domain/apartment"
	"github.com/sitedesk/sitedesk/internal/domain/block"
	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	"github.com/sitedesk/sitedesk/internal/domain/due"
	"github.com/sitedesk/sitedesk/internal/domain/resident"
	"github.com/sitedesk/sitedesk/internal/domain/site"
	"github.com/sitedesk/sitedesk/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	siteRepo      site.Repository
	blockRepo     block.Repository
	apartmentRepo apartment.Repository
	residentRepo  resident.Repository
	dueRepo       due.Repository
	paymentRepo   due.PaymentRepository
	complaintRepo complaint.Repository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		siteRepo:      repository.NewSiteRepository(c.db),
		blockRepo:     repository.NewBlockRepository(c.db),
		apartmentRepo: repository.NewApartmentRepository(c.db),
		residentRepo:  repository.NewResidentRepository(c.db),
		dueRepo:       repository.NewMonthlyDueRepository(c.db),
		paymentRepo:   repository.NewPaymentRepository(c.db),
		complaintRepo: repository.NewComplaintRepository(c.db),
	}
}

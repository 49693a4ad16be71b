package http

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sitedesk/sitedesk/internal/application/residence/usecases"
	"github.com/sitedesk/sitedesk/internal/infrastructure/export"
	"github.com/sitedesk/sitedesk/internal/shared/db"
)

// allUseCases holds the residence use cases exposed over HTTP.
type allUseCases struct {
	resolveSite     *usecases.ResolveSiteUseCase
	listBlocks      *usecases.ListBlocksUseCase
	createBlock     *usecases.CreateBlockUseCase
	updateBlock     *usecases.UpdateBlockUseCase
	deleteBlock     *usecases.DeleteBlockUseCase
	listApartments  *usecases.ListApartmentsUseCase
	deleteApartment *usecases.DeleteApartmentUseCase
	listResidents   *usecases.ListResidentsUseCase
	exportResidents *usecases.ExportResidentsUseCase
	getResident     *usecases.GetResidentUseCase
	createResident  *usecases.CreateResidentUseCase
	updateResident  *usecases.UpdateResidentUseCase
	deleteResident  *usecases.DeleteResidentUseCase

	reconcileSite     *usecases.ReconcileSiteUseCase
	reconcileAllSites *usecases.ReconcileAllSitesUseCase
}

func (c *Container) initUseCases() error {
	rc := c.cfg.Residence
	defaultDue, err := decimal.NewFromString(rc.DefaultDueAmount)
	if err != nil {
		return fmt.Errorf("invalid residence.default_due_amount %q: %w", rc.DefaultDueAmount, err)
	}

	r := c.repos
	txManager := db.NewTransactionManager(c.db)
	accountant := usecases.NewCapacityAccountant(r.apartmentRepo, r.blockRepo, r.residentRepo, c.log)
	getOrCreateApartment := usecases.NewGetOrCreateApartmentUseCase(r.apartmentRepo, c.log)
	seeder := usecases.NewDueSeeder(r.siteRepo, r.dueRepo, defaultDue, rc.DueDay, c.log)

	c.ucs = &allUseCases{
		resolveSite: usecases.NewResolveSiteUseCase(r.siteRepo, c.siteCodeCache, c.log),
		listBlocks:  usecases.NewListBlocksUseCase(r.blockRepo, c.log),
		createBlock: usecases.NewCreateBlockUseCase(r.blockRepo, c.log),
		updateBlock: usecases.NewUpdateBlockUseCase(r.blockRepo, r.residentRepo, rc.StrictCapacity, c.log),
		deleteBlock: usecases.NewDeleteBlockUseCase(
			r.blockRepo, r.apartmentRepo, r.residentRepo,
			r.dueRepo, r.paymentRepo, r.complaintRepo,
			txManager, c.log,
		),
		listApartments: usecases.NewListApartmentsUseCase(r.blockRepo, r.apartmentRepo, c.log),
		deleteApartment: usecases.NewDeleteApartmentUseCase(
			r.blockRepo, r.apartmentRepo, r.residentRepo,
			r.dueRepo, r.paymentRepo, r.complaintRepo,
			accountant, txManager, c.log,
		),
		listResidents:   usecases.NewListResidentsUseCase(r.residentRepo, c.log),
		exportResidents: usecases.NewExportResidentsUseCase(r.residentRepo, export.NewRosterWriter(), c.log),
		getResident:     usecases.NewGetResidentUseCase(r.residentRepo, r.blockRepo, c.log),
		createResident: usecases.NewCreateResidentUseCase(
			r.residentRepo, r.blockRepo, getOrCreateApartment,
			accountant, seeder, c.hasher, rc.PhoneRegion, c.log,
		),
		updateResident: usecases.NewUpdateResidentUseCase(
			r.residentRepo, r.blockRepo, getOrCreateApartment,
			accountant, rc.PhoneRegion, c.log,
		),
		deleteResident: usecases.NewDeleteResidentUseCase(
			r.residentRepo, r.dueRepo, r.paymentRepo, r.complaintRepo,
			accountant, c.log,
		),
		reconcileSite: usecases.NewReconcileSiteUseCase(r.blockRepo, r.apartmentRepo, accountant, c.log),
	}
	c.ucs.reconcileAllSites = usecases.NewReconcileAllSitesUseCase(r.siteRepo, c.ucs.reconcileSite, c.log)
	return nil
}

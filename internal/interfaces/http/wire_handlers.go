package http

import (
	residencehandlers "github.com/sitedesk/sitedesk/internal/interfaces/http/handlers/residence"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	residenceHandler *residencehandlers.Handler
}

func (c *Container) initHandlers() {
	u := c.ucs
	c.hdlrs = &allHandlers{
		residenceHandler: residencehandlers.NewHandler(residencehandlers.UseCases{
			ResolveSite:     u.resolveSite,
			ListBlocks:      u.listBlocks,
			CreateBlock:     u.createBlock,
			UpdateBlock:     u.updateBlock,
			DeleteBlock:     u.deleteBlock,
			ListApartments:  u.listApartments,
			DeleteApartment: u.deleteApartment,
			ListResidents:   u.listResidents,
			GetResident:     u.getResident,
			CreateResident:  u.createResident,
			UpdateResident:  u.updateResident,
			DeleteResident:  u.deleteResident,
			ExportResidents: u.exportResidents,
		}, c.log),
	}
}

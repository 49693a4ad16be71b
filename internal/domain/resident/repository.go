package resident

import "context"

// RosterEntry is a resident enriched with the display name of its block.
type RosterEntry struct {
	Resident  *Resident
	BlockName string
}

// Repository persists residents. Lookups return (nil, nil) when nothing
// matches; Create and Update return ErrPhoneTaken on a phone unique-key
// violation. Deletes are hard deletes.
type Repository interface {
	Create(ctx context.Context, r *Resident) error
	Update(ctx context.Context, r *Resident) error
	GetByID(ctx context.Context, id uint) (*Resident, error)
	ExistsByPhone(ctx context.Context, phone string, excludeID uint) (bool, error)

	// ListActiveBySite returns non-deleted ACTIVE residents of the site,
	// ordered by block name then natural apartment number.
	ListActiveBySite(ctx context.Context, siteID uint) ([]*RosterEntry, error)
	// CountActiveByApartment counts non-deleted ACTIVE residents, the same
	// set ListActiveBySite returns.
	CountActiveByApartment(ctx context.Context, apartmentID uint) (int, error)
	ListIDsByBlock(ctx context.Context, blockID uint) ([]uint, error)
	ListIDsByApartment(ctx context.Context, apartmentID uint) ([]uint, error)
	// ListApartmentNosByBlock returns the distinct apartment numbers held by
	// non-deleted residents of the block.
	ListApartmentNosByBlock(ctx context.Context, blockID uint) ([]string, error)

	Delete(ctx context.Context, id uint) error
	DeleteByIDs(ctx context.Context, ids []uint) error
}

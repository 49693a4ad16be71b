package apartment

import "context"

// Repository persists apartments. Lookups return (nil, nil) when nothing
// matches. Create returns ErrApartmentExists on a (block_id, apartment_no)
// unique-key violation.
type Repository interface {
	Create(ctx context.Context, a *Apartment) error
	GetByID(ctx context.Context, id uint) (*Apartment, error)
	GetByBlockAndNo(ctx context.Context, blockID uint, apartmentNo string) (*Apartment, error)
	ListByBlock(ctx context.Context, blockID uint) ([]*Apartment, error)

	// SetResidentCount writes resident_count and is_occupied in one statement.
	SetResidentCount(ctx context.Context, id uint, count int) error
	// SumResidentCountByBlock returns SUM(resident_count) over the block.
	SumResidentCountByBlock(ctx context.Context, blockID uint) (int, error)

	Delete(ctx context.Context, id uint) error
	DeleteByBlock(ctx context.Context, blockID uint) error
}

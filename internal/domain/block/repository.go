package block

import "context"

// Repository persists blocks. Lookups return (nil, nil) when nothing matches.
// Counter and capacity writes are single UPDATE statements so concurrent
// writers never overwrite each other's unrelated columns.
type Repository interface {
	Create(ctx context.Context, b *Block) error
	Update(ctx context.Context, b *Block) error
	GetByID(ctx context.Context, id uint) (*Block, error)
	GetByName(ctx context.Context, siteID uint, name string) (*Block, error)
	ListBySite(ctx context.Context, siteID uint) ([]*Block, error)
	ExistsByName(ctx context.Context, siteID uint, name string, excludeID uint) (bool, error)

	// RaiseCapacity sets apartment_count to atLeast if it is currently lower.
	// It never lowers the count and reports whether a row changed.
	RaiseCapacity(ctx context.Context, id uint, atLeast int) (bool, error)
	// DecrementCapacity lowers apartment_count by one, never below zero.
	DecrementCapacity(ctx context.Context, id uint) error
	SetResidentCount(ctx context.Context, id uint, count int) error

	// Delete hard-deletes the block row.
	Delete(ctx context.Context, id uint) error
}

package site

import "context"

// Repository returns (nil, nil) from lookups when the site does not exist.
type Repository interface {
	Create(ctx context.Context, s *Site) error
	GetByID(ctx context.Context, id uint) (*Site, error)
	GetByCode(ctx context.Context, code string) (*Site, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	// ListIDs returns the ids of all non-deleted sites in ascending order.
	ListIDs(ctx context.Context) ([]uint, error)
}

// CodeCache caches external code to internal id lookups.
type CodeCache interface {
	Get(ctx context.Context, code string) (id uint, found bool, err error)
	Set(ctx context.Context, code string, id uint) error
}

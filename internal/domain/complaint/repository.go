// Package complaint exposes the part of the complaint module that resident
// deletion depends on.
package complaint

import "context"

type Repository interface {
	DeleteByUserIDs(ctx context.Context, userIDs []uint) error
}

package usecases

import (
	"context"
	"io"

	"github.com/sitedesk/sitedesk/internal/application/residence/dto"
	"github.com/sitedesk/sitedesk/internal/domain/resident"
)

type ResolveSiteExecutor interface {
	Execute(ctx context.Context, ref string) (uint, error)
}

type CreateSiteExecutor interface {
	Execute(ctx context.Context, cmd CreateSiteCommand) (*dto.SiteDTO, error)
}

type ListBlocksExecutor interface {
	Execute(ctx context.Context, siteID uint) ([]*dto.BlockDTO, error)
}

type CreateBlockExecutor interface {
	Execute(ctx context.Context, cmd CreateBlockCommand) (*dto.BlockDTO, error)
}

type UpdateBlockExecutor interface {
	Execute(ctx context.Context, cmd UpdateBlockCommand) (*dto.BlockDTO, error)
}

type DeleteBlockExecutor interface {
	Execute(ctx context.Context, cmd DeleteBlockCommand) error
}

type ListApartmentsExecutor interface {
	Execute(ctx context.Context, query ListApartmentsQuery) ([]dto.ApartmentSlotDTO, error)
}

type DeleteApartmentExecutor interface {
	Execute(ctx context.Context, cmd DeleteApartmentCommand) error
}

type ListResidentsExecutor interface {
	Execute(ctx context.Context, siteID uint) ([]*dto.ResidentDTO, error)
}

type GetResidentExecutor interface {
	Execute(ctx context.Context, id uint) (*dto.ResidentDTO, error)
}

type CreateResidentExecutor interface {
	Execute(ctx context.Context, cmd CreateResidentCommand) (*dto.ResidentDTO, error)
}

type UpdateResidentExecutor interface {
	Execute(ctx context.Context, cmd UpdateResidentCommand) (*dto.ResidentDTO, error)
}

type DeleteResidentExecutor interface {
	Execute(ctx context.Context, id uint) error
}

type ExportResidentsExecutor interface {
	Execute(ctx context.Context, siteID uint, w io.Writer) error
}

type ReconcileSiteExecutor interface {
	Execute(ctx context.Context, siteID uint) (*dto.ReconcileResultDTO, error)
}

type ReconcileAllSitesExecutor interface {
	Execute(ctx context.Context) (int, error)
}

// TransactionRunner runs fn in a single storage transaction carried by ctx.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type RosterWriter interface {
	Write(w io.Writer, entries []*resident.RosterEntry) error
}

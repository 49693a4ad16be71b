package usecases

import (
	"context"
	"io"

	"github.com/sitedesk/sitedesk/internal/application/residence/dto"
	"github.com/sitedesk/sitedesk/internal/domain/resident"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type ListResidentsUseCase struct {
	residentRepo resident.Repository
	logger       logger.Interface
}

func NewListResidentsUseCase(residentRepo resident.Repository, logger logger.Interface) *ListResidentsUseCase {
	return &ListResidentsUseCase{
		residentRepo: residentRepo,
		logger:       logger,
	}
}

// Execute returns the site's active residents ordered by block name and
// apartment number.
func (uc *ListResidentsUseCase) Execute(ctx context.Context, siteID uint) ([]*dto.ResidentDTO, error) {
	entries, err := uc.residentRepo.ListActiveBySite(ctx, siteID)
	if err != nil {
		uc.logger.Errorw("failed to list residents", "site_id", siteID, "error", err)
		return nil, err
	}
	return dto.ToRosterDTOList(entries), nil
}

type ExportResidentsUseCase struct {
	residentRepo resident.Repository
	writer       RosterWriter
	logger       logger.Interface
}

func NewExportResidentsUseCase(residentRepo resident.Repository, writer RosterWriter, logger logger.Interface) *ExportResidentsUseCase {
	return &ExportResidentsUseCase{
		residentRepo: residentRepo,
		writer:       writer,
		logger:       logger,
	}
}

// Execute writes the same roster ListResidentsUseCase returns as a
// spreadsheet to w.
func (uc *ExportResidentsUseCase) Execute(ctx context.Context, siteID uint, w io.Writer) error {
	entries, err := uc.residentRepo.ListActiveBySite(ctx, siteID)
	if err != nil {
		uc.logger.Errorw("failed to load roster for export", "site_id", siteID, "error", err)
		return err
	}
	if err := uc.writer.Write(w, entries); err != nil {
		uc.logger.Errorw("failed to write roster export", "site_id", siteID, "error", err)
		return err
	}
	uc.logger.Infow("roster exported", "site_id", siteID, "residents", len(entries))
	return nil
}

package usecases

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sitedesk/sitedesk/internal/application/residence/dto"
	"github.com/sitedesk/sitedesk/internal/domain/site"
	"github.com/sitedesk/sitedesk/internal/shared/id"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

const maxSiteCodeAttempts = 5

type CreateSiteCommand struct {
	Name      string
	DueAmount decimal.Decimal
}

type CreateSiteUseCase struct {
	siteRepo site.Repository
	newCode  func() (string, error)
	logger   logger.Interface
}

func NewCreateSiteUseCase(siteRepo site.Repository, logger logger.Interface) *CreateSiteUseCase {
	return &CreateSiteUseCase{
		siteRepo: siteRepo,
		newCode:  id.NewSiteCode,
		logger:   logger,
	}
}

func (uc *CreateSiteUseCase) Execute(ctx context.Context, cmd CreateSiteCommand) (*dto.SiteDTO, error) {
	uc.logger.Infow("executing create site use case", "name", cmd.Name)

	if strings.TrimSpace(cmd.Name) == "" {
		return nil, site.ErrSiteNameRequired
	}
	if cmd.DueAmount.IsNegative() {
		return nil, site.ErrInvalidDueAmount
	}

	for attempt := 1; attempt <= maxSiteCodeAttempts; attempt++ {
		code, err := uc.newCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate site code: %w", err)
		}
		// All-digit codes would be read back as numeric ids.
		if _, err := strconv.ParseUint(code, 10, 64); err == nil {
			continue
		}

		exists, err := uc.siteRepo.ExistsByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		s, err := site.NewSite(code, cmd.Name, cmd.DueAmount)
		if err != nil {
			return nil, err
		}
		if err := uc.siteRepo.Create(ctx, s); err != nil {
			if errors.Is(err, site.ErrSiteCodeTaken) {
				continue
			}
			uc.logger.Errorw("failed to create site", "code", code, "error", err)
			return nil, err
		}

		uc.logger.Infow("site created", "site_id", s.ID(), "code", s.Code())
		return dto.ToSiteDTO(s), nil
	}

	return nil, site.ErrSiteCodeTaken.WithDetails(
		fmt.Sprintf("no free code after %d attempts", maxSiteCodeAttempts))
}

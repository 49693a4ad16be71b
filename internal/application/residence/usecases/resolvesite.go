package usecases

import (
	"context"
	"strconv"
	"strings"

	"github.com/sitedesk/sitedesk/internal/domain/site"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// ResolveSiteUseCase maps a site reference (external code or numeric id) to
// the internal site id.
type ResolveSiteUseCase struct {
	siteRepo site.Repository
	cache    site.CodeCache
	logger   logger.Interface
}

// NewResolveSiteUseCase accepts a nil cache; lookups then always hit storage.
func NewResolveSiteUseCase(siteRepo site.Repository, cache site.CodeCache, logger logger.Interface) *ResolveSiteUseCase {
	return &ResolveSiteUseCase{
		siteRepo: siteRepo,
		cache:    cache,
		logger:   logger,
	}
}

func (uc *ResolveSiteUseCase) Execute(ctx context.Context, ref string) (uint, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, site.ErrSiteRefRequired
	}

	// An all-digit reference is tried as an id first, then as a code.
	if n, err := strconv.ParseUint(ref, 10, 64); err == nil && n > 0 {
		s, err := uc.siteRepo.GetByID(ctx, uint(n))
		if err != nil {
			uc.logger.Errorw("failed to get site by id", "site_id", n, "error", err)
			return 0, err
		}
		if s != nil {
			return s.ID(), nil
		}
	}

	return uc.resolveCode(ctx, ref)
}

func (uc *ResolveSiteUseCase) resolveCode(ctx context.Context, code string) (uint, error) {
	if uc.cache != nil {
		id, found, err := uc.cache.Get(ctx, code)
		if err != nil {
			uc.logger.Warnw("site code cache read failed", "code", code, "error", err)
		} else if found {
			return id, nil
		}
	}

	s, err := uc.siteRepo.GetByCode(ctx, code)
	if err != nil {
		uc.logger.Errorw("failed to get site by code", "code", code, "error", err)
		return 0, err
	}
	if s == nil {
		return 0, site.ErrSiteNotFound
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, code, s.ID()); err != nil {
			uc.logger.Warnw("site code cache write failed", "code", code, "error", err)
		}
	}
	return s.ID(), nil
}

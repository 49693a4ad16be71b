package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/domain/site"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

func newTestSite(t *testing.T, id uint, code string) *site.Site {
	t.Helper()
	s, err := site.ReconstructSite(id, code, "Test Sitesi", decimal.NewFromInt(750), time.Now(), time.Now())
	require.NoError(t, err)
	return s
}

func TestResolveSiteUseCase_ByCode(t *testing.T) {
	var cached []string
	repo := &mockSiteRepository{
		GetByCodeFunc: func(ctx context.Context, code string) (*site.Site, error) {
			if code == "ABC123" {
				return newTestSite(t, 7, code), nil
			}
			return nil, nil
		},
	}
	cache := &mockCodeCache{
		SetFunc: func(ctx context.Context, code string, id uint) error {
			cached = append(cached, code)
			return nil
		},
	}
	uc := NewResolveSiteUseCase(repo, cache, logger.Nop())

	id, err := uc.Execute(context.Background(), "  ABC123 ")
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)
	assert.Equal(t, []string{"ABC123"}, cached)
}

func TestResolveSiteUseCase_CacheHitSkipsStorage(t *testing.T) {
	repo := &mockSiteRepository{
		GetByCodeFunc: func(ctx context.Context, code string) (*site.Site, error) {
			t.Fatal("storage must not be queried on a cache hit")
			return nil, nil
		},
	}
	cache := &mockCodeCache{
		GetFunc: func(ctx context.Context, code string) (uint, bool, error) {
			return 42, true, nil
		},
	}

	id, err := NewResolveSiteUseCase(repo, cache, logger.Nop()).Execute(context.Background(), "XYZ789")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestResolveSiteUseCase_CacheFailureFallsBackToStorage(t *testing.T) {
	repo := &mockSiteRepository{
		GetByCodeFunc: func(ctx context.Context, code string) (*site.Site, error) {
			return newTestSite(t, 3, code), nil
		},
	}
	cache := &mockCodeCache{
		GetFunc: func(ctx context.Context, code string) (uint, bool, error) {
			return 0, false, errors.New("connection refused")
		},
		SetFunc: func(ctx context.Context, code string, id uint) error {
			return errors.New("connection refused")
		},
	}

	id, err := NewResolveSiteUseCase(repo, cache, logger.Nop()).Execute(context.Background(), "QWE456")
	require.NoError(t, err)
	assert.Equal(t, uint(3), id)
}

func TestResolveSiteUseCase_NumericReference(t *testing.T) {
	t.Run("matches an id", func(t *testing.T) {
		repo := &mockSiteRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*site.Site, error) {
				return newTestSite(t, id, "ABCDEF"), nil
			},
		}
		id, err := NewResolveSiteUseCase(repo, nil, logger.Nop()).Execute(context.Background(), "12")
		require.NoError(t, err)
		assert.Equal(t, uint(12), id)
	})

	t.Run("falls back to a code", func(t *testing.T) {
		repo := &mockSiteRepository{
			GetByCodeFunc: func(ctx context.Context, code string) (*site.Site, error) {
				if code == "123456" {
					return newTestSite(t, 9, code), nil
				}
				return nil, nil
			},
		}
		id, err := NewResolveSiteUseCase(repo, nil, logger.Nop()).Execute(context.Background(), "123456")
		require.NoError(t, err)
		assert.Equal(t, uint(9), id)
	})
}

func TestResolveSiteUseCase_Errors(t *testing.T) {
	uc := NewResolveSiteUseCase(&mockSiteRepository{}, nil, logger.Nop())

	_, err := uc.Execute(context.Background(), "   ")
	assert.ErrorIs(t, err, site.ErrSiteRefRequired)

	_, err = uc.Execute(context.Background(), "NOPE00")
	assert.ErrorIs(t, err, site.ErrSiteNotFound)

	storageErr := errors.New("db down")
	failing := NewResolveSiteUseCase(&mockSiteRepository{
		GetByCodeFunc: func(ctx context.Context, code string) (*site.Site, error) {
			return nil, storageErr
		},
	}, nil, logger.Nop())
	_, err = failing.Execute(context.Background(), "ABCDEF")
	assert.ErrorIs(t, err, storageErr)
}

package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/domain/site"
)

type mockSiteRepository struct {
	CreateFunc       func(ctx context.Context, s *site.Site) error
	GetByIDFunc      func(ctx context.Context, id uint) (*site.Site, error)
	GetByCodeFunc    func(ctx context.Context, code string) (*site.Site, error)
	ExistsByCodeFunc func(ctx context.Context, code string) (bool, error)
	ListIDsFunc      func(ctx context.Context) ([]uint, error)
}

func (m *mockSiteRepository) Create(ctx context.Context, s *site.Site) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return s.SetID(1)
}

func (m *mockSiteRepository) GetByID(ctx context.Context, id uint) (*site.Site, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSiteRepository) GetByCode(ctx context.Context, code string) (*site.Site, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockSiteRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	if m.ExistsByCodeFunc != nil {
		return m.ExistsByCodeFunc(ctx, code)
	}
	return false, nil
}

func (m *mockSiteRepository) ListIDs(ctx context.Context) ([]uint, error) {
	if m.ListIDsFunc != nil {
		return m.ListIDsFunc(ctx)
	}
	return nil, nil
}

type mockCodeCache struct {
	GetFunc func(ctx context.Context, code string) (uint, bool, error)
	SetFunc func(ctx context.Context, code string, id uint) error
}

func (m *mockCodeCache) Get(ctx context.Context, code string) (uint, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, code)
	}
	return 0, false, nil
}

func (m *mockCodeCache) Set(ctx context.Context, code string, id uint) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, code, id)
	}
	return nil
}

type mockPasswordHasher struct {
	HashFunc func(password string) (string, error)
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

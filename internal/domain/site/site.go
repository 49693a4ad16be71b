// Package site holds the site aggregate: the top-level tenant boundary that
// owns blocks, apartments and residents.
package site

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Site is immutable once created.
type Site struct {
	id        uint
	code      string
	name      string
	dueAmount decimal.Decimal
	createdAt time.Time
	updatedAt time.Time
}

// NewSite creates a site with the given external code. A zero dueAmount means
// the configured default applies when dues are seeded.
func NewSite(code, name string, dueAmount decimal.Decimal) (*Site, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" {
		return nil, ErrSiteRefRequired
	}
	if name == "" {
		return nil, ErrSiteNameRequired
	}
	if dueAmount.IsNegative() {
		return nil, ErrInvalidDueAmount
	}

	now := time.Now().UTC()
	return &Site{
		code:      code,
		name:      name,
		dueAmount: dueAmount,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSite rebuilds a persisted site.
func ReconstructSite(id uint, code, name string, dueAmount decimal.Decimal, createdAt, updatedAt time.Time) (*Site, error) {
	if id == 0 {
		return nil, fmt.Errorf("site ID cannot be zero")
	}
	if code == "" {
		return nil, fmt.Errorf("site code is required")
	}
	return &Site{
		id:        id,
		code:      code,
		name:      name,
		dueAmount: dueAmount,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *Site) ID() uint                   { return s.id }
func (s *Site) Code() string               { return s.code }
func (s *Site) Name() string               { return s.name }
func (s *Site) DueAmount() decimal.Decimal { return s.dueAmount }
func (s *Site) CreatedAt() time.Time       { return s.createdAt }
func (s *Site) UpdatedAt() time.Time       { return s.updatedAt }

// SetID is called by the repository after insert.
func (s *Site) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("site ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("site ID cannot be zero")
	}
	s.id = id
	return nil
}

// EffectiveDueAmount returns the site's monthly due, or fallback when the
// site has none configured.
func (s *Site) EffectiveDueAmount(fallback decimal.Decimal) decimal.Decimal {
	if s.dueAmount.IsPositive() {
		return s.dueAmount
	}
	return fallback
}

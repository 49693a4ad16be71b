// Package block holds the block aggregate: a named subdivision of a site
// with a declared apartment capacity and a cached resident count.
package block

import (
	"fmt"
	"strings"
	"time"
)

type Block struct {
	id             uint
	siteID         uint
	name           string
	description    string
	apartmentCount int
	residentCount  int
	createdAt      time.Time
	updatedAt      time.Time
}

func NewBlock(siteID uint, name string, apartmentCount int, description string) (*Block, error) {
	if siteID == 0 {
		return nil, fmt.Errorf("site ID is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlockNameRequired
	}
	if apartmentCount <= 0 {
		return nil, ErrInvalidApartmentCount
	}

	now := time.Now().UTC()
	return &Block{
		siteID:         siteID,
		name:           name,
		description:    strings.TrimSpace(description),
		apartmentCount: apartmentCount,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructBlock(
	id, siteID uint,
	name, description string,
	apartmentCount, residentCount int,
	createdAt, updatedAt time.Time,
) (*Block, error) {
	if id == 0 {
		return nil, fmt.Errorf("block ID cannot be zero")
	}
	if siteID == 0 {
		return nil, fmt.Errorf("block %d has no site", id)
	}
	return &Block{
		id:             id,
		siteID:         siteID,
		name:           name,
		description:    description,
		apartmentCount: apartmentCount,
		residentCount:  residentCount,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (b *Block) ID() uint             { return b.id }
func (b *Block) SiteID() uint         { return b.siteID }
func (b *Block) Name() string         { return b.name }
func (b *Block) Description() string  { return b.description }
func (b *Block) ApartmentCount() int  { return b.apartmentCount }
func (b *Block) ResidentCount() int   { return b.residentCount }
func (b *Block) CreatedAt() time.Time { return b.createdAt }
func (b *Block) UpdatedAt() time.Time { return b.updatedAt }

func (b *Block) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("block ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("block ID cannot be zero")
	}
	b.id = id
	return nil
}

// BelongsTo reports whether the block is part of siteID.
func (b *Block) BelongsTo(siteID uint) bool {
	return b.siteID == siteID
}

func (b *Block) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlockNameRequired
	}
	if name != b.name {
		b.name = name
		b.touch()
	}
	return nil
}

func (b *Block) SetDescription(description string) {
	b.description = strings.TrimSpace(description)
	b.touch()
}

// SetApartmentCount changes the declared capacity. highestInUse is the largest
// numeric apartment number currently assigned to a resident of the block;
// pass 0 to skip the occupancy check.
func (b *Block) SetApartmentCount(count, highestInUse int) error {
	if count <= 0 {
		return ErrInvalidApartmentCount
	}
	if highestInUse > 0 && count < highestInUse {
		return ErrCapacityBelowOccupancy.WithDetails(
			fmt.Sprintf("apartment %d is in use", highestInUse))
	}
	b.apartmentCount = count
	b.touch()
	return nil
}

// NeedsCapacityFor reports whether assigning apartment number no requires the
// capacity to be raised.
func (b *Block) NeedsCapacityFor(no int) bool {
	return no > b.apartmentCount
}

func (b *Block) touch() {
	b.updatedAt = time.Now().UTC()
}

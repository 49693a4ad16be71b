// Package apartment holds the apartment entity. Apartments are identified by
// (block, apartment number) and are materialized lazily the first time a
// resident is assigned to them.
package apartment

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Apartment struct {
	id            uint
	blockID       uint
	apartmentNo   string
	residentCount int
	isOccupied    bool
	createdAt     time.Time
	updatedAt     time.Time
}

// NewApartment returns an empty, unoccupied apartment.
func NewApartment(blockID uint, apartmentNo string) (*Apartment, error) {
	if blockID == 0 {
		return nil, fmt.Errorf("block ID is required")
	}
	apartmentNo = NormalizeNo(apartmentNo)
	if apartmentNo == "" {
		return nil, ErrApartmentNoRequired
	}
	now := time.Now().UTC()
	return &Apartment{
		blockID:     blockID,
		apartmentNo: apartmentNo,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructApartment(
	id, blockID uint,
	apartmentNo string,
	residentCount int,
	isOccupied bool,
	createdAt, updatedAt time.Time,
) (*Apartment, error) {
	if id == 0 {
		return nil, fmt.Errorf("apartment ID cannot be zero")
	}
	return &Apartment{
		id:            id,
		blockID:       blockID,
		apartmentNo:   apartmentNo,
		residentCount: residentCount,
		isOccupied:    isOccupied,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (a *Apartment) ID() uint             { return a.id }
func (a *Apartment) BlockID() uint        { return a.blockID }
func (a *Apartment) ApartmentNo() string  { return a.apartmentNo }
func (a *Apartment) ResidentCount() int   { return a.residentCount }
func (a *Apartment) IsOccupied() bool     { return a.isOccupied }
func (a *Apartment) CreatedAt() time.Time { return a.createdAt }
func (a *Apartment) UpdatedAt() time.Time { return a.updatedAt }

func (a *Apartment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("apartment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("apartment ID cannot be zero")
	}
	a.id = id
	return nil
}

// Number returns the apartment number as an integer when it is numeric.
func (a *Apartment) Number() (int, bool) {
	return ParseNo(a.apartmentNo)
}

// NormalizeNo trims surrounding whitespace from an apartment number.
func NormalizeNo(no string) string {
	return strings.TrimSpace(no)
}

// ParseNo parses a numeric apartment number. Non-numeric numbers such as
// "3A" report false and never take part in capacity checks.
func ParseNo(no string) (int, bool) {
	n, err := strconv.Atoi(NormalizeNo(no))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

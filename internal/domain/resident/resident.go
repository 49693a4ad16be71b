// Package resident holds the resident aggregate: a person registered to a
// site and optionally to one block and one apartment.
package resident

import (
	"fmt"
	"strings"
	"time"
)

type Resident struct {
	id            uint
	fullName      string
	phoneNumber   string
	siteID        uint
	blockID       *uint
	apartmentID   *uint
	apartmentNo   string
	residentType  ResidentType
	plates        string
	passwordHash  string
	accountStatus AccountStatus
	createdAt     time.Time
	updatedAt     time.Time
}

// NewResident creates an active resident. phoneNumber must already be
// normalized with NormalizePhone.
func NewResident(siteID uint, fullName, phoneNumber string, residentType ResidentType) (*Resident, error) {
	if siteID == 0 {
		return nil, fmt.Errorf("site ID is required")
	}
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrFullNameRequired
	}
	if phoneNumber == "" {
		return nil, ErrPhoneRequired
	}

	now := time.Now().UTC()
	return &Resident{
		fullName:      fullName,
		phoneNumber:   phoneNumber,
		siteID:        siteID,
		residentType:  residentType,
		accountStatus: AccountStatusActive,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructResident rebuilds a persisted resident.
func ReconstructResident(
	id uint,
	fullName, phoneNumber string,
	siteID uint,
	blockID, apartmentID *uint,
	apartmentNo string,
	residentType ResidentType,
	plates, passwordHash string,
	accountStatus AccountStatus,
	createdAt, updatedAt time.Time,
) (*Resident, error) {
	if id == 0 {
		return nil, fmt.Errorf("resident ID cannot be zero")
	}
	if !accountStatus.IsValid() {
		return nil, fmt.Errorf("invalid account status %q", accountStatus)
	}
	return &Resident{
		id:            id,
		fullName:      fullName,
		phoneNumber:   phoneNumber,
		siteID:        siteID,
		blockID:       blockID,
		apartmentID:   apartmentID,
		apartmentNo:   apartmentNo,
		residentType:  residentType,
		plates:        plates,
		passwordHash:  passwordHash,
		accountStatus: accountStatus,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (r *Resident) ID() uint                     { return r.id }
func (r *Resident) FullName() string             { return r.fullName }
func (r *Resident) PhoneNumber() string          { return r.phoneNumber }
func (r *Resident) SiteID() uint                 { return r.siteID }
func (r *Resident) BlockID() *uint               { return r.blockID }
func (r *Resident) ApartmentID() *uint           { return r.apartmentID }
func (r *Resident) ApartmentNo() string          { return r.apartmentNo }
func (r *Resident) ResidentType() ResidentType   { return r.residentType }
func (r *Resident) Plates() string               { return r.plates }
func (r *Resident) PasswordHash() string         { return r.passwordHash }
func (r *Resident) AccountStatus() AccountStatus { return r.accountStatus }
func (r *Resident) CreatedAt() time.Time         { return r.createdAt }
func (r *Resident) UpdatedAt() time.Time         { return r.updatedAt }

func (r *Resident) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("resident ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("resident ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Resident) BelongsToSite(siteID uint) bool {
	return r.siteID == siteID
}

// Placement returns the block and apartment ids, zero when unset.
func (r *Resident) Placement() (blockID, apartmentID uint) {
	if r.blockID != nil {
		blockID = *r.blockID
	}
	if r.apartmentID != nil {
		apartmentID = *r.apartmentID
	}
	return blockID, apartmentID
}

// AssignTo places the resident. Zero ids clear the link.
func (r *Resident) AssignTo(blockID, apartmentID uint, apartmentNo string) {
	r.blockID = optionalID(blockID)
	r.apartmentID = optionalID(apartmentID)
	r.apartmentNo = strings.TrimSpace(apartmentNo)
	r.touch()
}

func (r *Resident) Rename(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return ErrFullNameRequired
	}
	r.fullName = fullName
	r.touch()
	return nil
}

// ChangePhone sets an already normalized phone number.
func (r *Resident) ChangePhone(phoneNumber string) error {
	if phoneNumber == "" {
		return ErrPhoneRequired
	}
	r.phoneNumber = phoneNumber
	r.touch()
	return nil
}

func (r *Resident) SetPlates(plates string) {
	r.plates = strings.TrimSpace(plates)
	r.touch()
}

func (r *Resident) SetResidentType(t ResidentType) {
	r.residentType = t
	r.touch()
}

func (r *Resident) SetPasswordHash(hash string) {
	r.passwordHash = hash
	r.touch()
}

func (r *Resident) touch() {
	r.updatedAt = time.Now().UTC()
}

func optionalID(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}

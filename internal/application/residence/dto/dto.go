package dto

import (
	"time"

	"github.com/sitedesk/sitedesk/internal/domain/apartment"
	"github.com/sitedesk/sitedesk/internal/domain/block"
	"github.com/sitedesk/sitedesk/internal/domain/resident"
	"github.com/sitedesk/sitedesk/internal/domain/site"
	"github.com/sitedesk/sitedesk/internal/shared/mapper"
)

type SiteDTO struct {
	ID        uint      `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	DueAmount string    `json:"due_amount"`
	CreatedAt time.Time `json:"created_at"`
}

type BlockDTO struct {
	ID             uint      `json:"id"`
	SiteID         uint      `json:"site_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	ApartmentCount int       `json:"apartment_count"`
	ResidentCount  int       `json:"resident_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ApartmentDTO struct {
	ID            uint   `json:"id"`
	BlockID       uint   `json:"block_id"`
	ApartmentNo   string `json:"apartment_no"`
	ResidentCount int    `json:"resident_count"`
	IsOccupied    bool   `json:"is_occupied"`
}

// ApartmentSlotDTO is an apartment as listed for a block. Phantom slots have
// a zero id and materialized=false.
type ApartmentSlotDTO struct {
	ID            uint   `json:"id"`
	ApartmentNo   string `json:"apartment_no"`
	ResidentCount int    `json:"resident_count"`
	IsOccupied    bool   `json:"is_occupied"`
	Materialized  bool   `json:"materialized"`
}

// ResidentDTO never carries the password hash.
type ResidentDTO struct {
	ID            uint      `json:"id"`
	FullName      string    `json:"full_name"`
	PhoneNumber   string    `json:"phone_number"`
	SiteID        uint      `json:"site_id"`
	BlockID       *uint     `json:"block_id"`
	BlockName     string    `json:"block_name,omitempty"`
	ApartmentID   *uint     `json:"apartment_id"`
	ApartmentNo   string    `json:"apartment_no"`
	ResidentType  string    `json:"resident_type"`
	Plates        string    `json:"plates"`
	AccountStatus string    `json:"account_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToSiteDTO(s *site.Site) *SiteDTO {
	if s == nil {
		return nil
	}
	return &SiteDTO{
		ID:        s.ID(),
		Code:      s.Code(),
		Name:      s.Name(),
		DueAmount: s.DueAmount().StringFixed(2),
		CreatedAt: s.CreatedAt(),
	}
}

func ToBlockDTO(b *block.Block) *BlockDTO {
	if b == nil {
		return nil
	}
	return &BlockDTO{
		ID:             b.ID(),
		SiteID:         b.SiteID(),
		Name:           b.Name(),
		Description:    b.Description(),
		ApartmentCount: b.ApartmentCount(),
		ResidentCount:  b.ResidentCount(),
		CreatedAt:      b.CreatedAt(),
		UpdatedAt:      b.UpdatedAt(),
	}
}

// ToBlockDTOList never returns nil so empty lists encode as [].
func ToBlockDTOList(blocks []*block.Block) []*BlockDTO {
	if blocks == nil {
		return []*BlockDTO{}
	}
	return mapper.MapSlice(blocks, ToBlockDTO)
}

func ToApartmentDTO(a *apartment.Apartment) *ApartmentDTO {
	if a == nil {
		return nil
	}
	return &ApartmentDTO{
		ID:            a.ID(),
		BlockID:       a.BlockID(),
		ApartmentNo:   a.ApartmentNo(),
		ResidentCount: a.ResidentCount(),
		IsOccupied:    a.IsOccupied(),
	}
}

func ToApartmentSlotDTOList(slots []apartment.Slot) []ApartmentSlotDTO {
	out := make([]ApartmentSlotDTO, len(slots))
	for i, s := range slots {
		out[i] = ApartmentSlotDTO{
			ID:            s.ID,
			ApartmentNo:   s.ApartmentNo,
			ResidentCount: s.ResidentCount,
			IsOccupied:    s.IsOccupied,
			Materialized:  s.Materialized,
		}
	}
	return out
}

func ToResidentDTO(r *resident.Resident) *ResidentDTO {
	if r == nil {
		return nil
	}
	return &ResidentDTO{
		ID:            r.ID(),
		FullName:      r.FullName(),
		PhoneNumber:   r.PhoneNumber(),
		SiteID:        r.SiteID(),
		BlockID:       r.BlockID(),
		ApartmentID:   r.ApartmentID(),
		ApartmentNo:   r.ApartmentNo(),
		ResidentType:  r.ResidentType().String(),
		Plates:        r.Plates(),
		AccountStatus: string(r.AccountStatus()),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
}

func ToRosterDTOList(entries []*resident.RosterEntry) []*ResidentDTO {
	if entries == nil {
		return []*ResidentDTO{}
	}
	return mapper.MapSlice(entries, func(e *resident.RosterEntry) *ResidentDTO {
		d := ToResidentDTO(e.Resident)
		d.BlockName = e.BlockName
		return d
	})
}

// ReconcileResultDTO reports how many counter rows a reconciliation pass
// rewrote.
type ReconcileResultDTO struct {
	SiteID     uint `json:"site_id"`
	Apartments int  `json:"apartments"`
	Blocks     int  `json:"blocks"`
}

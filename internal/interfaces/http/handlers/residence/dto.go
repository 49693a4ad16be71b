package residence

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/sitedesk/sitedesk/internal/application/residence/usecases"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
)

// FlexibleString accepts a JSON string or a JSON number. Clients send
// apartment numbers both ways.
type FlexibleString string

func (s *FlexibleString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexibleString(v)
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*s = FlexibleString(n.String())
		return nil
	}
	return errors.NewValidationError("Geçersiz istek verisi", "apartment_no must be a string or a number")
}

func (s *FlexibleString) ptr() *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

type CreateResidentRequest struct {
	FullName     string          `json:"full_name" binding:"required"`
	PhoneNumber  string          `json:"phone_number" binding:"required"`
	BlockID      *uint           `json:"block_id,omitempty"`
	BlockName    *string         `json:"block_name,omitempty"`
	ApartmentNo  *FlexibleString `json:"apartment_no,omitempty"`
	Plates       string          `json:"plates,omitempty"`
	ResidentType string          `json:"resident_type,omitempty"`
	Password     string          `json:"password,omitempty" binding:"omitempty,min=6"`
}

func (r *CreateResidentRequest) ToCommand(siteID uint) usecases.CreateResidentCommand {
	return usecases.CreateResidentCommand{
		SiteID:      siteID,
		FullName:    strings.TrimSpace(r.FullName),
		PhoneNumber: r.PhoneNumber,
		Placement: usecases.PlacementInput{
			BlockID:     r.BlockID,
			BlockName:   r.BlockName,
			ApartmentNo: r.ApartmentNo.ptr(),
		},
		Plates:       r.Plates,
		ResidentType: r.ResidentType,
		Password:     r.Password,
	}
}

type UpdateResidentRequest struct {
	FullName     *string         `json:"full_name,omitempty"`
	PhoneNumber  *string         `json:"phone_number,omitempty"`
	Plates       *string         `json:"plates,omitempty"`
	ResidentType *string         `json:"resident_type,omitempty"`
	BlockID      *uint           `json:"block_id,omitempty"`
	BlockName    *string         `json:"block_name,omitempty"`
	ApartmentNo  *FlexibleString `json:"apartment_no,omitempty"`
}

func (r *UpdateResidentRequest) ToCommand(siteID, residentID uint) usecases.UpdateResidentCommand {
	return usecases.UpdateResidentCommand{
		SiteID:       siteID,
		ResidentID:   residentID,
		FullName:     r.FullName,
		PhoneNumber:  r.PhoneNumber,
		Plates:       r.Plates,
		ResidentType: r.ResidentType,
		Placement: usecases.PlacementInput{
			BlockID:     r.BlockID,
			BlockName:   r.BlockName,
			ApartmentNo: r.ApartmentNo.ptr(),
		},
	}
}

type CreateBlockRequest struct {
	BlockName      string  `json:"block_name" binding:"required"`
	ApartmentCount int     `json:"apartment_count" binding:"required,min=1"`
	Description    *string `json:"description,omitempty"`
}

func (r *CreateBlockRequest) ToCommand(siteID uint) usecases.CreateBlockCommand {
	cmd := usecases.CreateBlockCommand{
		SiteID:         siteID,
		Name:           r.BlockName,
		ApartmentCount: r.ApartmentCount,
	}
	if r.Description != nil {
		cmd.Description = *r.Description
	}
	return cmd
}

type UpdateBlockRequest struct {
	BlockName      *string `json:"block_name,omitempty"`
	ApartmentCount *int    `json:"apartment_count,omitempty" binding:"omitempty,min=1"`
	Description    *string `json:"description,omitempty"`
}

func (r *UpdateBlockRequest) ToCommand(blockID, siteID uint) usecases.UpdateBlockCommand {
	return usecases.UpdateBlockCommand{
		BlockID:        blockID,
		SiteID:         siteID,
		Name:           r.BlockName,
		ApartmentCount: r.ApartmentCount,
		Description:    r.Description,
	}
}

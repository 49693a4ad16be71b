package mappers

import (
	"fmt"

	"github.com/sitedesk/sitedesk/internal/domain/resident"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
)

type ResidentMapper interface {
	ToEntity(model *models.UserModel) (*resident.Resident, error)
	ToRosterEntries(rows []*models.RosterRow) ([]*resident.RosterEntry, error)
	ToModel(entity *resident.Resident) *models.UserModel
}

type ResidentMapperImpl struct{}

func NewResidentMapper() ResidentMapper {
	return &ResidentMapperImpl{}
}

func (m *ResidentMapperImpl) ToEntity(model *models.UserModel) (*resident.Resident, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := resident.ReconstructResident(
		model.ID,
		model.FullName,
		model.PhoneNumber,
		model.SiteID,
		model.BlockID,
		model.ApartmentID,
		model.ApartmentNo,
		resident.ResidentType(model.ResidentType),
		model.Plates,
		model.PasswordHash,
		resident.AccountStatus(model.AccountStatus),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct resident entity: %w", err)
	}
	return entity, nil
}

func (m *ResidentMapperImpl) ToRosterEntries(rows []*models.RosterRow) ([]*resident.RosterEntry, error) {
	entries := make([]*resident.RosterEntry, 0, len(rows))
	for _, row := range rows {
		entity, err := m.ToEntity(&row.UserModel)
		if err != nil {
			return nil, fmt.Errorf("failed to map item ID %d: %w", row.ID, err)
		}
		entries = append(entries, &resident.RosterEntry{Resident: entity, BlockName: row.BlockName})
	}
	return entries, nil
}

func (m *ResidentMapperImpl) ToModel(entity *resident.Resident) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:            entity.ID(),
		FullName:      entity.FullName(),
		PhoneNumber:   entity.PhoneNumber(),
		SiteID:        entity.SiteID(),
		BlockID:       entity.BlockID(),
		ApartmentID:   entity.ApartmentID(),
		ApartmentNo:   entity.ApartmentNo(),
		ResidentType:  entity.ResidentType().String(),
		Plates:        entity.Plates(),
		PasswordHash:  entity.PasswordHash(),
		AccountStatus: string(entity.AccountStatus()),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

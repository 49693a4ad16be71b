package mappers

import (
	"fmt"

	"github.com/sitedesk/sitedesk/internal/domain/apartment"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/mapper"
)

type ApartmentMapper interface {
	ToEntity(model *models.ApartmentModel) (*apartment.Apartment, error)
	ToEntities(rows []*models.ApartmentModel) ([]*apartment.Apartment, error)
	ToModel(entity *apartment.Apartment) *models.ApartmentModel
}

type ApartmentMapperImpl struct{}

func NewApartmentMapper() ApartmentMapper {
	return &ApartmentMapperImpl{}
}

func (m *ApartmentMapperImpl) ToEntity(model *models.ApartmentModel) (*apartment.Apartment, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := apartment.ReconstructApartment(
		model.ID,
		model.BlockID,
		model.ApartmentNo,
		model.ResidentCount,
		model.IsOccupied,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct apartment entity: %w", err)
	}
	return entity, nil
}

func (m *ApartmentMapperImpl) ToEntities(rows []*models.ApartmentModel) ([]*apartment.Apartment, error) {
	return mapper.MapSlicePtrWithID(rows, m.ToEntity, func(a *models.ApartmentModel) uint { return a.ID })
}

func (m *ApartmentMapperImpl) ToModel(entity *apartment.Apartment) *models.ApartmentModel {
	if entity == nil {
		return nil
	}
	return &models.ApartmentModel{
		ID:            entity.ID(),
		BlockID:       entity.BlockID(),
		ApartmentNo:   entity.ApartmentNo(),
		ResidentCount: entity.ResidentCount(),
		IsOccupied:    entity.IsOccupied(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

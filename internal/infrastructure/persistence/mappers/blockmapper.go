package mappers

import (
	"fmt"

	"github.com/sitedesk/sitedesk/internal/domain/block"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/mapper"
)

type BlockMapper interface {
	ToEntity(model *models.BlockModel) (*block.Block, error)
	ToEntities(rows []*models.BlockModel) ([]*block.Block, error)
	ToModel(entity *block.Block) *models.BlockModel
}

type BlockMapperImpl struct{}

func NewBlockMapper() BlockMapper {
	return &BlockMapperImpl{}
}

func (m *BlockMapperImpl) ToEntity(model *models.BlockModel) (*block.Block, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := block.ReconstructBlock(
		model.ID,
		model.SiteID,
		model.Name,
		model.Description,
		model.ApartmentCount,
		model.ResidentCount,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct block entity: %w", err)
	}
	return entity, nil
}

func (m *BlockMapperImpl) ToEntities(rows []*models.BlockModel) ([]*block.Block, error) {
	return mapper.MapSlicePtrWithID(rows, m.ToEntity, func(b *models.BlockModel) uint { return b.ID })
}

func (m *BlockMapperImpl) ToModel(entity *block.Block) *models.BlockModel {
	if entity == nil {
		return nil
	}
	return &models.BlockModel{
		ID:             entity.ID(),
		SiteID:         entity.SiteID(),
		Name:           entity.Name(),
		Description:    entity.Description(),
		ApartmentCount: entity.ApartmentCount(),
		ResidentCount:  entity.ResidentCount(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

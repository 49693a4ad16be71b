package mappers

import (
	"fmt"

	"github.com/sitedesk/sitedesk/internal/domain/site"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
)

type SiteMapper interface {
	ToEntity(model *models.SiteModel) (*site.Site, error)
	ToModel(entity *site.Site) *models.SiteModel
}

type SiteMapperImpl struct{}

func NewSiteMapper() SiteMapper {
	return &SiteMapperImpl{}
}

func (m *SiteMapperImpl) ToEntity(model *models.SiteModel) (*site.Site, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := site.ReconstructSite(model.ID, model.Code, model.Name, model.DueAmount, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct site entity: %w", err)
	}
	return entity, nil
}

func (m *SiteMapperImpl) ToModel(entity *site.Site) *models.SiteModel {
	if entity == nil {
		return nil
	}
	return &models.SiteModel{
		ID:        entity.ID(),
		Code:      entity.Code(),
		Name:      entity.Name(),
		DueAmount: entity.DueAmount(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

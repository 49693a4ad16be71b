package mappers

import (
	"fmt"

	"github.com/sitedesk/sitedesk/internal/domain/due"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
)

type MonthlyDueMapper interface {
	ToEntity(model *models.MonthlyDueModel) (*due.MonthlyDue, error)
	ToModel(entity *due.MonthlyDue) *models.MonthlyDueModel
}

type MonthlyDueMapperImpl struct{}

func NewMonthlyDueMapper() MonthlyDueMapper {
	return &MonthlyDueMapperImpl{}
}

func (m *MonthlyDueMapperImpl) ToEntity(model *models.MonthlyDueModel) (*due.MonthlyDue, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := due.ReconstructMonthlyDue(
		model.ID,
		model.UserID,
		model.ApartmentID,
		model.SiteID,
		due.Period{Month: model.Month, Year: model.Year},
		model.Amount,
		model.DueDate,
		due.PaymentStatus(model.PaymentStatus),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct monthly due entity: %w", err)
	}
	return entity, nil
}

func (m *MonthlyDueMapperImpl) ToModel(entity *due.MonthlyDue) *models.MonthlyDueModel {
	if entity == nil {
		return nil
	}
	return &models.MonthlyDueModel{
		ID:            entity.ID(),
		UserID:        entity.UserID(),
		SiteID:        entity.SiteID(),
		Month:         entity.Period().Month,
		Year:          entity.Period().Year,
		ApartmentID:   entity.ApartmentID(),
		Amount:        entity.Amount(),
		DueDate:       entity.DueDate(),
		PaymentStatus: string(entity.PaymentStatus()),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

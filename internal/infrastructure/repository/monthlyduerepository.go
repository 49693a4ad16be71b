package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sitedesk/sitedesk/internal/domain/due"
	"github.com/sitedesk/sitedesk/internal/domain/resident"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/mappers"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/constants"
	"github.com/sitedesk/sitedesk/internal/shared/db"
)

type MonthlyDueRepository struct {
	db     *gorm.DB
	mapper mappers.MonthlyDueMapper
}

func NewMonthlyDueRepository(gdb *gorm.DB) *MonthlyDueRepository {
	return &MonthlyDueRepository{
		db:     gdb,
		mapper: mappers.NewMonthlyDueMapper(),
	}
}

func (r *MonthlyDueRepository) Upsert(ctx context.Context, d *due.MonthlyDue) error {
	model := r.mapper.ToModel(d)
	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "site_id"},
			{Name: "month"},
			{Name: "year"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"apartment_id", "amount", "due_date", "payment_status", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert monthly due: %w", err)
	}

	if d.ID() == 0 && model.ID != 0 {
		d.SetID(model.ID)
	}
	return nil
}

func (r *MonthlyDueRepository) GetByUserAndPeriod(ctx context.Context, userID, siteID uint, period due.Period) (*due.MonthlyDue, error) {
	var model models.MonthlyDueModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND site_id = ? AND month = ? AND year = ?", userID, siteID, period.Month, period.Year).
		First(&model).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get monthly due: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *MonthlyDueRepository) FindApartmentStatus(
	ctx context.Context,
	apartmentID, siteID uint,
	period due.Period,
	excludeUserID uint,
) (due.PaymentStatus, bool, error) {
	var statuses []string
	if err := db.GetTxFromContext(ctx, r.db).
		Table(constants.TableMonthlyDues+" d").
		Joins("JOIN "+constants.TableUsers+" u ON u.id = d.user_id").
		Scopes(db.NotDeletedWithAlias("u")).
		Where("u.account_status = ?", string(resident.AccountStatusActive)).
		Where("d.apartment_id = ? AND d.site_id = ? AND d.month = ? AND d.year = ? AND d.user_id <> ?",
			apartmentID, siteID, period.Month, period.Year, excludeUserID).
		Order("d.id ASC").
		Limit(1).
		Pluck("d.payment_status", &statuses).Error; err != nil {
		return "", false, fmt.Errorf("failed to find apartment due status: %w", err)
	}
	if len(statuses) == 0 {
		return "", false, nil
	}
	return due.PaymentStatus(statuses[0]), true, nil
}

func (r *MonthlyDueRepository) DeleteByUserIDs(ctx context.Context, userIDs []uint) error {
	return deleteByUserIDs(ctx, r.db, &models.MonthlyDueModel{}, userIDs)
}

// PaymentRepository removes payment ledger rows of deleted residents.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(gdb *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: gdb}
}

func (r *PaymentRepository) DeleteByUserIDs(ctx context.Context, userIDs []uint) error {
	return deleteByUserIDs(ctx, r.db, &models.PaymentModel{}, userIDs)
}

// ComplaintRepository removes complaints of deleted residents.
type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(gdb *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: gdb}
}

func (r *ComplaintRepository) DeleteByUserIDs(ctx context.Context, userIDs []uint) error {
	return deleteByUserIDs(ctx, r.db, &models.ComplaintModel{}, userIDs)
}

func deleteByUserIDs(ctx context.Context, gdb *gorm.DB, model any, userIDs []uint) error {
	if len(userIDs) == 0 {
		return nil
	}
	if err := db.GetTxFromContext(ctx, gdb).
		Where("user_id IN ?", userIDs).
		Delete(model).Error; err != nil {
		return fmt.Errorf("failed to delete %T rows: %w", model, err)
	}
	return nil
}

package repository

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/domain/resident"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/mappers"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/constants"
	"github.com/sitedesk/sitedesk/internal/shared/db"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

type ResidentRepository struct {
	db     *gorm.DB
	mapper mappers.ResidentMapper
}

func NewResidentRepository(gdb *gorm.DB) *ResidentRepository {
	return &ResidentRepository{
		db:     gdb,
		mapper: mappers.NewResidentMapper(),
	}
}

var residentUpdateColumns = []string{
	"full_name", "phone_number", "block_id", "apartment_id", "apartment_no",
	"resident_type", "plates", "password_hash", "updated_at",
}

func (r *ResidentRepository) Create(ctx context.Context, res *resident.Resident) error {
	model := r.mapper.ToModel(res)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return resident.ErrPhoneTaken
		}
		return fmt.Errorf("failed to create resident: %w", err)
	}
	return res.SetID(model.ID)
}

func (r *ResidentRepository) Update(ctx context.Context, res *resident.Resident) error {
	model := r.mapper.ToModel(res)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select(residentUpdateColumns).
		Updates(model)
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return resident.ErrPhoneTaken
		}
		return fmt.Errorf("failed to update resident: %w", result.Error)
	}
	return nil
}

func (r *ResidentRepository) GetByID(ctx context.Context, id uint) (*resident.Resident, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resident by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// ExistsByPhone includes soft-deleted rows: the unique index does too.
func (r *ResidentRepository) ExistsByPhone(ctx context.Context, phone string, excludeID uint) (bool, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Unscoped().
		Where("phone_number = ?", phone)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check phone number: %w", err)
	}
	return count > 0, nil
}

func (r *ResidentRepository) ListActiveBySite(ctx context.Context, siteID uint) ([]*resident.RosterEntry, error) {
	var rows []*models.RosterRow
	if err := db.GetTxFromContext(ctx, r.db).
		Table(constants.TableUsers+" u").
		Select("u.*, COALESCE(b.name, '') AS block_name").
		Joins("LEFT JOIN "+constants.TableBlocks+" b ON b.id = u.block_id").
		Scopes(db.NotDeletedWithAlias("u")).
		Where("u.site_id = ? AND u.account_status = ?", siteID, string(resident.AccountStatusActive)).
		Order("block_name ASC").
		Order("u.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}

	// apartment numbers are strings; natural order needs to happen here
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].BlockName != rows[j].BlockName {
			return rows[i].BlockName < rows[j].BlockName
		}
		return utils.CompareApartmentNo(rows[i].ApartmentNo, rows[j].ApartmentNo) < 0
	})

	return r.mapper.ToRosterEntries(rows)
}

func (r *ResidentRepository) CountActiveByApartment(ctx context.Context, apartmentID uint) (int, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("apartment_id = ? AND account_status = ?", apartmentID, string(resident.AccountStatusActive)).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count apartment residents: %w", err)
	}
	return int(count), nil
}

func (r *ResidentRepository) ListIDsByBlock(ctx context.Context, blockID uint) ([]uint, error) {
	return r.pluckIDs(ctx, "block_id = ?", blockID)
}

func (r *ResidentRepository) ListIDsByApartment(ctx context.Context, apartmentID uint) ([]uint, error) {
	return r.pluckIDs(ctx, "apartment_id = ?", apartmentID)
}

// pluckIDs includes soft-deleted rows so administrative deletes leave
// nothing behind that still references the block or apartment.
func (r *ResidentRepository) pluckIDs(ctx context.Context, cond string, arg uint) ([]uint, error) {
	var ids []uint
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Unscoped().
		Where(cond, arg).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list resident IDs: %w", err)
	}
	return ids, nil
}

func (r *ResidentRepository) ListApartmentNosByBlock(ctx context.Context, blockID uint) ([]string, error) {
	var nos []string
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("block_id = ? AND apartment_no <> ''", blockID).
		Distinct().
		Pluck("apartment_no", &nos).Error; err != nil {
		return nil, fmt.Errorf("failed to list apartment numbers: %w", err)
	}
	return nos, nil
}

func (r *ResidentRepository) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Unscoped().
		Delete(&models.UserModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete resident: %w", err)
	}
	return nil
}

func (r *ResidentRepository) DeleteByIDs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := db.GetTxFromContext(ctx, r.db).
		Unscoped().
		Where("id IN ?", ids).
		Delete(&models.UserModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete residents: %w", err)
	}
	return nil
}

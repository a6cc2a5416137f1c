package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"safe-rescue.backend/internal/domain/entities"
	domainerrors "safe-rescue.backend/internal/domain/errors"
	"safe-rescue.backend/internal/infrastructure/models"
)

type ShiftRepositoryImpl struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) *ShiftRepositoryImpl {
	return &ShiftRepositoryImpl{db: db}
}

func (r *ShiftRepositoryImpl) Save(ctx context.Context, shift *entities.Shift) error {
	db := GetDB(ctx, r.db)

	m := shiftToModel(shift)
	if err := db.Save(m).Error; err != nil {
		return err
	}
	shift.ID = m.ID
	shift.CreatedAt = m.CreatedAt
	shift.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ShiftRepositoryImpl) GetByID(ctx context.Context, id uint) (*entities.Shift, error) {
	db := GetDB(ctx, r.db)

	var m models.Shift
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.NotFoundID("shift", id)
		}
		return nil, err
	}
	return shiftToEntity(&m), nil
}

func (r *ShiftRepositoryImpl) List(ctx context.Context) ([]*entities.Shift, error) {
	db := GetDB(ctx, r.db)

	var ms []models.Shift
	if err := db.Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Shift, 0, len(ms))
	for i := range ms {
		items = append(items, shiftToEntity(&ms[i]))
	}
	return items, nil
}

func (r *ShiftRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	db := GetDB(ctx, r.db)

	var count int64
	if err := db.Model(&models.Shift{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ShiftRepositoryImpl) Delete(ctx context.Context, id uint) error {
	db := GetDB(ctx, r.db)

	result := db.Delete(&models.Shift{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.NotFoundID("shift", id)
	}
	return nil
}

func shiftToEntity(m *models.Shift) *entities.Shift {
	return &entities.Shift{
		ID:            m.ID,
		Name:          m.Name,
		StartsAt:      m.StartsAt,
		EndsAt:        m.EndsAt,
		DurationHours: m.DurationHours,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func shiftToModel(e *entities.Shift) *models.Shift {
	return &models.Shift{
		ID:            e.ID,
		Name:          e.Name,
		StartsAt:      e.StartsAt,
		EndsAt:        e.EndsAt,
		DurationHours: e.DurationHours,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"safe-rescue.backend/internal/domain/entities"
	domainerrors "safe-rescue.backend/internal/domain/errors"
	"safe-rescue.backend/internal/infrastructure/models"
)

type TeamTypeRepositoryImpl struct {
	db *gorm.DB
}

func NewTeamTypeRepository(db *gorm.DB) *TeamTypeRepositoryImpl {
	return &TeamTypeRepositoryImpl{db: db}
}

func (r *TeamTypeRepositoryImpl) Save(ctx context.Context, teamType *entities.TeamType) error {
	db := GetDB(ctx, r.db)

	m := teamTypeToModel(teamType)
	if err := db.Save(m).Error; err != nil {
		return err
	}
	teamType.ID = m.ID
	teamType.CreatedAt = m.CreatedAt
	teamType.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TeamTypeRepositoryImpl) GetByID(ctx context.Context, id uint) (*entities.TeamType, error) {
	db := GetDB(ctx, r.db)

	var m models.TeamType
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.NotFoundID("team type", id)
		}
		return nil, err
	}
	return teamTypeToEntity(&m), nil
}

func (r *TeamTypeRepositoryImpl) List(ctx context.Context) ([]*entities.TeamType, error) {
	db := GetDB(ctx, r.db)

	var ms []models.TeamType
	if err := db.Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.TeamType, 0, len(ms))
	for i := range ms {
		items = append(items, teamTypeToEntity(&ms[i]))
	}
	return items, nil
}

func (r *TeamTypeRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	db := GetDB(ctx, r.db)

	var count int64
	if err := db.Model(&models.TeamType{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *TeamTypeRepositoryImpl) Delete(ctx context.Context, id uint) error {
	db := GetDB(ctx, r.db)

	result := db.Delete(&models.TeamType{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.NotFoundID("team type", id)
	}
	return nil
}

func teamTypeToEntity(m *models.TeamType) *entities.TeamType {
	return &entities.TeamType{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func teamTypeToModel(e *entities.TeamType) *models.TeamType {
	return &models.TeamType{
		ID:        e.ID,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

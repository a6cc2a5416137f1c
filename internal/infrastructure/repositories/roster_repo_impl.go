package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"safe-rescue.backend/internal/domain/entities"
	domainerrors "safe-rescue.backend/internal/domain/errors"
	"safe-rescue.backend/internal/infrastructure/models"
)

type FirefighterRepositoryImpl struct {
	db *gorm.DB
}

func NewFirefighterRepository(db *gorm.DB) *FirefighterRepositoryImpl {
	return &FirefighterRepositoryImpl{db: db}
}

func (r *FirefighterRepositoryImpl) Save(ctx context.Context, firefighter *entities.Firefighter) error {
	db := GetDB(ctx, r.db)

	m := firefighterToModel(firefighter)
	if err := db.Omit("TeamID").Save(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.Conflict("firefighter phone already registered")
		}
		return err
	}
	firefighter.ID = m.ID
	return nil
}

func (r *FirefighterRepositoryImpl) GetByID(ctx context.Context, id uint) (*entities.Firefighter, error) {
	db := GetDB(ctx, r.db)

	var m models.Firefighter
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.NotFoundID("firefighter", id)
		}
		return nil, err
	}
	return firefighterToEntity(&m), nil
}

func (r *FirefighterRepositoryImpl) List(ctx context.Context) ([]*entities.Firefighter, error) {
	db := GetDB(ctx, r.db)

	var ms []models.Firefighter
	if err := db.Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Firefighter, 0, len(ms))
	for i := range ms {
		items = append(items, firefighterToEntity(&ms[i]))
	}
	return items, nil
}

func (r *FirefighterRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	db := GetDB(ctx, r.db)

	var count int64
	if err := db.Model(&models.Firefighter{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

type VehicleRepositoryImpl struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepositoryImpl {
	return &VehicleRepositoryImpl{db: db}
}

func (r *VehicleRepositoryImpl) Save(ctx context.Context, vehicle *entities.Vehicle) error {
	db := GetDB(ctx, r.db)

	m := vehicleToModel(vehicle)
	if err := db.Omit("TeamID").Save(m).Error; err != nil {
		return err
	}
	vehicle.ID = m.ID
	return nil
}

func (r *VehicleRepositoryImpl) GetByID(ctx context.Context, id uint) (*entities.Vehicle, error) {
	db := GetDB(ctx, r.db)

	var m models.Vehicle
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.NotFoundID("vehicle", id)
		}
		return nil, err
	}
	return vehicleToEntity(&m), nil
}

func (r *VehicleRepositoryImpl) List(ctx context.Context) ([]*entities.Vehicle, error) {
	db := GetDB(ctx, r.db)

	var ms []models.Vehicle
	if err := db.Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Vehicle, 0, len(ms))
	for i := range ms {
		items = append(items, vehicleToEntity(&ms[i]))
	}
	return items, nil
}

func (r *VehicleRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	db := GetDB(ctx, r.db)

	var count int64
	if err := db.Model(&models.Vehicle{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

type ResourceRepositoryImpl struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepositoryImpl {
	return &ResourceRepositoryImpl{db: db}
}

func (r *ResourceRepositoryImpl) Save(ctx context.Context, resource *entities.Resource) error {
	db := GetDB(ctx, r.db)

	m := resourceToModel(resource)
	if err := db.Omit("TeamID").Save(m).Error; err != nil {
		return err
	}
	resource.ID = m.ID
	return nil
}

func (r *ResourceRepositoryImpl) GetByID(ctx context.Context, id uint) (*entities.Resource, error) {
	db := GetDB(ctx, r.db)

	var m models.Resource
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.NotFoundID("resource", id)
		}
		return nil, err
	}
	return resourceToEntity(&m), nil
}

func (r *ResourceRepositoryImpl) List(ctx context.Context) ([]*entities.Resource, error) {
	db := GetDB(ctx, r.db)

	var ms []models.Resource
	if err := db.Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Resource, 0, len(ms))
	for i := range ms {
		items = append(items, resourceToEntity(&ms[i]))
	}
	return items, nil
}

func (r *ResourceRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	db := GetDB(ctx, r.db)

	var count int64
	if err := db.Model(&models.Resource{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func firefighterToEntity(m *models.Firefighter) *entities.Firefighter {
	return &entities.Firefighter{
		ID:           m.ID,
		FirstName:    m.FirstName,
		PaternalName: m.PaternalName,
		MaternalName: m.MaternalName,
		Phone:        m.Phone,
	}
}

func firefighterToModel(e *entities.Firefighter) *models.Firefighter {
	return &models.Firefighter{
		ID:           e.ID,
		FirstName:    e.FirstName,
		PaternalName: e.PaternalName,
		MaternalName: e.MaternalName,
		Phone:        e.Phone,
	}
}

func vehicleToEntity(m *models.Vehicle) *entities.Vehicle {
	return &entities.Vehicle{
		ID:     m.ID,
		Make:   m.Make,
		Model:  m.Model,
		Plate:  m.Plate,
		Driver: m.Driver,
		Status: m.Status,
	}
}

func vehicleToModel(e *entities.Vehicle) *models.Vehicle {
	return &models.Vehicle{
		ID:     e.ID,
		Make:   e.Make,
		Model:  e.Model,
		Plate:  e.Plate,
		Driver: e.Driver,
		Status: e.Status,
	}
}

func resourceToEntity(m *models.Resource) *entities.Resource {
	return &entities.Resource{
		ID:       m.ID,
		Name:     m.Name,
		Kind:     m.Kind,
		Quantity: m.Quantity,
	}
}

func resourceToModel(e *entities.Resource) *models.Resource {
	return &models.Resource{
		ID:       e.ID,
		Name:     e.Name,
		Kind:     e.Kind,
		Quantity: e.Quantity,
	}
}

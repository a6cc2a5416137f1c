package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"safe-rescue.backend/internal/domain/entities"
	domainerrors "safe-rescue.backend/internal/domain/errors"
	"safe-rescue.backend/internal/infrastructure/models"
)

type CompanyRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepositoryImpl {
	return &CompanyRepositoryImpl{db: db}
}

// Save persists the company's owned location first, then the company row with
// its location FK. Company names are unique; violations surface as conflicts.
func (r *CompanyRepositoryImpl) Save(ctx context.Context, company *entities.Company) error {
	db := GetDB(ctx, r.db)

	m := companyToModel(company)
	if company.Location != nil {
		loc := locationToModel(company.Location)
		if err := db.Save(loc).Error; err != nil {
			return err
		}
		company.Location.ID = loc.ID
		m.LocationID = &loc.ID
	}

	if err := db.Omit("Location").Save(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.Conflict("company name already registered")
		}
		return err
	}
	company.ID = m.ID
	company.CreatedAt = m.CreatedAt
	company.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *CompanyRepositoryImpl) GetByID(ctx context.Context, id uint) (*entities.Company, error) {
	db := GetDB(ctx, r.db)

	var m models.Company
	if err := db.Preload("Location").Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.NotFoundID("company", id)
		}
		return nil, err
	}
	return companyToEntity(&m), nil
}

func (r *CompanyRepositoryImpl) List(ctx context.Context) ([]*entities.Company, error) {
	db := GetDB(ctx, r.db)

	var ms []models.Company
	if err := db.Preload("Location").Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Company, 0, len(ms))
	for i := range ms {
		items = append(items, companyToEntity(&ms[i]))
	}
	return items, nil
}

func (r *CompanyRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	db := GetDB(ctx, r.db)

	var count int64
	if err := db.Model(&models.Company{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CompanyRepositoryImpl) Delete(ctx context.Context, id uint) error {
	db := GetDB(ctx, r.db)

	result := db.Delete(&models.Company{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.NotFoundID("company", id)
	}
	return nil
}

func companyToEntity(m *models.Company) *entities.Company {
	company := &entities.Company{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Location != nil {
		company.Location = locationToEntity(m.Location)
	}
	return company
}

func companyToModel(e *entities.Company) *models.Company {
	m := &models.Company{
		ID:        e.ID,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.Location != nil && e.Location.ID != 0 {
		id := e.Location.ID
		m.LocationID = &id
	}
	return m
}

type LocationRepositoryImpl struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepositoryImpl {
	return &LocationRepositoryImpl{db: db}
}

func (r *LocationRepositoryImpl) Save(ctx context.Context, location *entities.Location) error {
	db := GetDB(ctx, r.db)

	m := locationToModel(location)
	if err := db.Save(m).Error; err != nil {
		return err
	}
	location.ID = m.ID
	return nil
}

func (r *LocationRepositoryImpl) GetByID(ctx context.Context, id uint) (*entities.Location, error) {
	db := GetDB(ctx, r.db)

	var m models.Location
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.NotFoundID("location", id)
		}
		return nil, err
	}
	return locationToEntity(&m), nil
}

func (r *LocationRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	db := GetDB(ctx, r.db)

	var count int64
	if err := db.Model(&models.Location{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func locationToEntity(m *models.Location) *entities.Location {
	return &entities.Location{
		ID:          m.ID,
		Street:      m.Street,
		HouseNumber: m.HouseNumber,
		District:    m.District,
		Region:      m.Region,
	}
}

func locationToModel(e *entities.Location) *models.Location {
	return &models.Location{
		ID:          e.ID,
		Street:      e.Street,
		HouseNumber: e.HouseNumber,
		District:    e.District,
		Region:      e.Region,
	}
}

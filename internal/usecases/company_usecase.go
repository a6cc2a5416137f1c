package usecases

import (
	"context"

	"safe-rescue.backend/internal/domain/entities"
	domainerrors "safe-rescue.backend/internal/domain/errors"
	"safe-rescue.backend/internal/domain/repositories"
)

// CompanyUsecase is the company sub-orchestrator. A company owns its Location,
// which is validated and persisted together with the company row.
type CompanyUsecase struct {
	repo         repositories.CompanyRepository
	locationRepo repositories.LocationRepository
}

func NewCompanyUsecase(repo repositories.CompanyRepository, locationRepo repositories.LocationRepository) *CompanyUsecase {
	return &CompanyUsecase{repo: repo, locationRepo: locationRepo}
}

func (u *CompanyUsecase) List(ctx context.Context) ([]*entities.Company, error) {
	return u.repo.List(ctx)
}

func (u *CompanyUsecase) GetByID(ctx context.Context, id uint) (*entities.Company, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *CompanyUsecase) Save(ctx context.Context, company *entities.Company) (*entities.Company, error) {
	if err := ValidateCompany(company); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (u *CompanyUsecase) Update(ctx context.Context, patch *entities.CompanyPatch, id uint) (*entities.Company, error) {
	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name.Valid {
		if err := requireString("name", patch.Name.String, maxNameLen); err != nil {
			return nil, err
		}
		existing.Name = patch.Name.String
	}
	if patch.Location != nil {
		existing.Location = patch.Location
	}

	if err := ValidateCompany(existing); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (u *CompanyUsecase) Delete(ctx context.Context, id uint) error {
	exists, err := u.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.NotFoundID("company", id)
	}
	return u.repo.Delete(ctx, id)
}

// AssignLocation points the company at an existing location row
func (u *CompanyUsecase) AssignLocation(ctx context.Context, companyID, locationID uint) error {
	company, err := u.repo.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	location, err := u.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return err
	}
	if err := ValidateLocation(location); err != nil {
		return err
	}
	company.Location = location
	return u.repo.Save(ctx, company)
}

package repositories

import (
	"context"

	"safe-rescue.backend/internal/domain/entities"
)

type CompanyRepository interface {
	Save(ctx context.Context, company *entities.Company) error
	GetByID(ctx context.Context, id uint) (*entities.Company, error)
	List(ctx context.Context) ([]*entities.Company, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type LocationRepository interface {
	Save(ctx context.Context, location *entities.Location) error
	GetByID(ctx context.Context, id uint) (*entities.Location, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

package usecases

import (
	"context"

	"safe-rescue.backend/internal/domain/entities"
	"safe-rescue.backend/internal/domain/repositories"
)

// Resolver materializes identifier references into full entities via the
// repositories. A miss anywhere in a batch aborts the whole batch so partial
// attachment is never observable.
type Resolver struct {
	shiftRepo       repositories.ShiftRepository
	companyRepo     repositories.CompanyRepository
	teamTypeRepo    repositories.TeamTypeRepository
	firefighterRepo repositories.FirefighterRepository
	vehicleRepo     repositories.VehicleRepository
	resourceRepo    repositories.ResourceRepository
}

func NewResolver(
	shiftRepo repositories.ShiftRepository,
	companyRepo repositories.CompanyRepository,
	teamTypeRepo repositories.TeamTypeRepository,
	firefighterRepo repositories.FirefighterRepository,
	vehicleRepo repositories.VehicleRepository,
	resourceRepo repositories.ResourceRepository,
) *Resolver {
	return &Resolver{
		shiftRepo:       shiftRepo,
		companyRepo:     companyRepo,
		teamTypeRepo:    teamTypeRepo,
		firefighterRepo: firefighterRepo,
		vehicleRepo:     vehicleRepo,
		resourceRepo:    resourceRepo,
	}
}

func (r *Resolver) Shift(ctx context.Context, id uint) (*entities.Shift, error) {
	return r.shiftRepo.GetByID(ctx, id)
}

func (r *Resolver) Company(ctx context.Context, id uint) (*entities.Company, error) {
	return r.companyRepo.GetByID(ctx, id)
}

func (r *Resolver) TeamType(ctx context.Context, id uint) (*entities.TeamType, error) {
	return r.teamTypeRepo.GetByID(ctx, id)
}

// Firefighters resolves an id list into full rows, aborting on the first
// missing id.
func (r *Resolver) Firefighters(ctx context.Context, ids []uint) ([]entities.Firefighter, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	items := make([]entities.Firefighter, 0, len(ids))
	for _, id := range ids {
		item, err := r.firefighterRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

func (r *Resolver) Vehicles(ctx context.Context, ids []uint) ([]entities.Vehicle, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	items := make([]entities.Vehicle, 0, len(ids))
	for _, id := range ids {
		item, err := r.vehicleRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

func (r *Resolver) Resources(ctx context.Context, ids []uint) ([]entities.Resource, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	items := make([]entities.Resource, 0, len(ids))
	for _, id := range ids {
		item, err := r.resourceRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

package repositories

import (
	"context"

	"safe-rescue.backend/internal/domain/entities"
)

// Roster repositories back the owned collections of a team. The orchestrator
// only ever resolves existing rows through them; rows are attached to and
// detached from teams via TeamRepository.

type FirefighterRepository interface {
	Save(ctx context.Context, firefighter *entities.Firefighter) error
	GetByID(ctx context.Context, id uint) (*entities.Firefighter, error)
	List(ctx context.Context) ([]*entities.Firefighter, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type VehicleRepository interface {
	Save(ctx context.Context, vehicle *entities.Vehicle) error
	GetByID(ctx context.Context, id uint) (*entities.Vehicle, error)
	List(ctx context.Context) ([]*entities.Vehicle, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type ResourceRepository interface {
	Save(ctx context.Context, resource *entities.Resource) error
	GetByID(ctx context.Context, id uint) (*entities.Resource, error)
	List(ctx context.Context) ([]*entities.Resource, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

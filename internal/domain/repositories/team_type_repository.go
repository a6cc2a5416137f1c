package repositories

import (
	"context"

	"safe-rescue.backend/internal/domain/entities"
)

type TeamTypeRepository interface {
	Save(ctx context.Context, teamType *entities.TeamType) error
	GetByID(ctx context.Context, id uint) (*entities.TeamType, error)
	List(ctx context.Context) ([]*entities.TeamType, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

package repositories

import (
	"context"

	"safe-rescue.backend/internal/domain/entities"
)

type ShiftRepository interface {
	Save(ctx context.Context, shift *entities.Shift) error
	GetByID(ctx context.Context, id uint) (*entities.Shift, error)
	List(ctx context.Context) ([]*entities.Shift, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

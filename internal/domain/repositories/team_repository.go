package repositories

import (
	"context"
	"time"

	"safe-rescue.backend/internal/domain/entities"
)

type TeamRepository interface {
	// Save persists a team together with its reference FKs and owned
	// collections. A zero ID creates a new row; collections are replaced
	// wholesale, with orphaned child rows deleted.
	Save(ctx context.Context, team *entities.Team) error
	GetByID(ctx context.Context, id uint) (*entities.Team, error)
	List(ctx context.Context) ([]*entities.Team, error)
	Exists(ctx context.Context, id uint) (bool, error)
	// Delete removes the team row and its owned firefighter/vehicle/resource
	// rows. Referenced shift/company/team-type rows are never touched.
	Delete(ctx context.Context, id uint) error
	// ListActiveWithExpiredShift returns ids of active teams whose assigned
	// shift ended before now.
	ListActiveWithExpiredShift(ctx context.Context, now time.Time, limit int) ([]uint, error)
	Deactivate(ctx context.Context, ids []uint) error
}

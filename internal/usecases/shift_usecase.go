package usecases

import (
	"context"

	"safe-rescue.backend/internal/domain/entities"
	domainerrors "safe-rescue.backend/internal/domain/errors"
	"safe-rescue.backend/internal/domain/repositories"
)

// ShiftUsecase is the shift sub-orchestrator. Duration is always recomputed
// from the timestamps on every save; client-supplied values are discarded.
type ShiftUsecase struct {
	repo repositories.ShiftRepository
}

func NewShiftUsecase(repo repositories.ShiftRepository) *ShiftUsecase {
	return &ShiftUsecase{repo: repo}
}

func (u *ShiftUsecase) List(ctx context.Context) ([]*entities.Shift, error) {
	return u.repo.List(ctx)
}

func (u *ShiftUsecase) GetByID(ctx context.Context, id uint) (*entities.Shift, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *ShiftUsecase) Save(ctx context.Context, shift *entities.Shift) (*entities.Shift, error) {
	if err := ValidateShift(shift); err != nil {
		return nil, err
	}
	shift.DurationHours = ComputeShiftDuration(shift.StartsAt, shift.EndsAt)
	if err := u.repo.Save(ctx, shift); err != nil {
		return nil, err
	}
	return shift, nil
}

// Update merges the patch onto the stored shift. Each supplied field is
// validated before it is copied; the merged result is revalidated as a whole
// before persisting, so date ordering holds across the merge.
func (u *ShiftUsecase) Update(ctx context.Context, patch *entities.ShiftPatch, id uint) (*entities.Shift, error) {
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
	if patch.StartsAt.Valid {
		existing.StartsAt = patch.StartsAt.Time
	}
	if patch.EndsAt.Valid {
		existing.EndsAt = patch.EndsAt.Time
	}

	if err := ValidateShift(existing); err != nil {
		return nil, err
	}
	existing.DurationHours = ComputeShiftDuration(existing.StartsAt, existing.EndsAt)

	if err := u.repo.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (u *ShiftUsecase) Delete(ctx context.Context, id uint) error {
	exists, err := u.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.NotFoundID("shift", id)
	}
	return u.repo.Delete(ctx, id)
}

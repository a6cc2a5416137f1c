package usecases

import (
	"context"

	"safe-rescue.backend/internal/domain/entities"
	domainerrors "safe-rescue.backend/internal/domain/errors"
	"safe-rescue.backend/internal/domain/repositories"
)

// TeamTypeUsecase is the team-type sub-orchestrator
type TeamTypeUsecase struct {
	repo repositories.TeamTypeRepository
}

func NewTeamTypeUsecase(repo repositories.TeamTypeRepository) *TeamTypeUsecase {
	return &TeamTypeUsecase{repo: repo}
}

func (u *TeamTypeUsecase) List(ctx context.Context) ([]*entities.TeamType, error) {
	return u.repo.List(ctx)
}

func (u *TeamTypeUsecase) GetByID(ctx context.Context, id uint) (*entities.TeamType, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *TeamTypeUsecase) Save(ctx context.Context, teamType *entities.TeamType) (*entities.TeamType, error) {
	if err := ValidateTeamType(teamType); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, teamType); err != nil {
		return nil, err
	}
	return teamType, nil
}

func (u *TeamTypeUsecase) Update(ctx context.Context, patch *entities.TeamTypePatch, id uint) (*entities.TeamType, error) {
	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name.Valid {
		existing.Name = patch.Name.String
	}

	if err := ValidateTeamType(existing); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (u *TeamTypeUsecase) Delete(ctx context.Context, id uint) error {
	exists, err := u.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.NotFoundID("team type", id)
	}
	return u.repo.Delete(ctx, id)
}

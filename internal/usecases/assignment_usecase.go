package usecases

import (
	"context"

	domainerrors "safe-rescue.backend/internal/domain/errors"
	"safe-rescue.backend/internal/domain/repositories"
)

// AssignmentUsecase exposes narrow single-relationship mutations for clients
// that do not want to resubmit the whole aggregate. Each operation is one
// read-modify-write transaction; the team's other fields are not revalidated.
type AssignmentUsecase struct {
	teamRepo repositories.TeamRepository
	resolver *Resolver
	uow      repositories.UnitOfWork
}

func NewAssignmentUsecase(teamRepo repositories.TeamRepository, resolver *Resolver, uow repositories.UnitOfWork) *AssignmentUsecase {
	return &AssignmentUsecase{teamRepo: teamRepo, resolver: resolver, uow: uow}
}

func (u *AssignmentUsecase) AssignShift(ctx context.Context, teamID, shiftID uint) error {
	return u.uow.Do(ctx, func(ctx context.Context) error {
		team, err := u.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return err
		}
		shift, err := u.resolver.Shift(ctx, shiftID)
		if err != nil {
			return err
		}
		team.Shift = shift
		return u.teamRepo.Save(ctx, team)
	})
}

func (u *AssignmentUsecase) AssignCompany(ctx context.Context, teamID, companyID uint) error {
	return u.uow.Do(ctx, func(ctx context.Context) error {
		team, err := u.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return err
		}
		company, err := u.resolver.Company(ctx, companyID)
		if err != nil {
			return err
		}
		team.Company = company
		return u.teamRepo.Save(ctx, team)
	})
}

func (u *AssignmentUsecase) AssignTeamType(ctx context.Context, teamID, teamTypeID uint) error {
	return u.uow.Do(ctx, func(ctx context.Context) error {
		team, err := u.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return err
		}
		teamType, err := u.resolver.TeamType(ctx, teamTypeID)
		if err != nil {
			return err
		}
		team.TeamType = teamType
		return u.teamRepo.Save(ctx, team)
	})
}

// AssignFirefighters replaces the team's whole firefighter collection with
// the resolved id list. An empty or nil list is rejected before any storage
// access.
func (u *AssignmentUsecase) AssignFirefighters(ctx context.Context, teamID uint, firefighterIDs []uint) error {
	if len(firefighterIDs) == 0 {
		return domainerrors.Validation("firefighters", "list must not be empty")
	}
	return u.uow.Do(ctx, func(ctx context.Context) error {
		team, err := u.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return err
		}
		resolved, err := u.resolver.Firefighters(ctx, firefighterIDs)
		if err != nil {
			return err
		}
		team.Firefighters = resolved
		return u.teamRepo.Save(ctx, team)
	})
}

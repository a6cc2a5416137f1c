package usecases

import (
	"context"

	"safe-rescue.backend/internal/domain/entities"
	domainerrors "safe-rescue.backend/internal/domain/errors"
	"safe-rescue.backend/internal/domain/repositories"
)

// TeamUsecase is the aggregate orchestrator: the only component that writes a
// full team aggregate. Every operation runs inside one unit-of-work
// transaction, so a failure anywhere leaves the stored aggregate untouched.
type TeamUsecase struct {
	teamRepo   repositories.TeamRepository
	shiftUC    *ShiftUsecase
	companyUC  *CompanyUsecase
	teamTypeUC *TeamTypeUsecase
	resolver   *Resolver
	uow        repositories.UnitOfWork
}

func NewTeamUsecase(
	teamRepo repositories.TeamRepository,
	shiftUC *ShiftUsecase,
	companyUC *CompanyUsecase,
	teamTypeUC *TeamTypeUsecase,
	resolver *Resolver,
	uow repositories.UnitOfWork,
) *TeamUsecase {
	return &TeamUsecase{
		teamRepo:   teamRepo,
		shiftUC:    shiftUC,
		companyUC:  companyUC,
		teamTypeUC: teamTypeUC,
		resolver:   resolver,
		uow:        uow,
	}
}

func (u *TeamUsecase) FindAll(ctx context.Context) ([]*entities.Team, error) {
	return u.teamRepo.List(ctx)
}

func (u *TeamUsecase) FindByID(ctx context.Context, id uint) (*entities.Team, error) {
	return u.teamRepo.GetByID(ctx, id)
}

// Save persists a new team aggregate. Order matters: the reference
// dependencies are validated and persisted through their sub-orchestrators
// first (capturing generated ids), the owned id-lists are re-resolved against
// storage so only rows that truly exist get attached, then the aggregate's own
// fields are validated and the team row is written. Any failure rolls the
// whole transaction back.
func (u *TeamUsecase) Save(ctx context.Context, team *entities.Team) (*entities.Team, error) {
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.persistReferences(ctx, team.Shift, team.Company, team.TeamType, team); err != nil {
			return err
		}
		if err := u.resolveCollections(ctx, team, team.Firefighters, team.Vehicles, team.Resources); err != nil {
			return err
		}
		if err := ValidateTeamAggregate(team); err != nil {
			return err
		}
		return u.teamRepo.Save(ctx, team)
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

// Update merges a partial patch onto the stored team. Supplied scalar fields
// are validated individually before they are copied; supplied references are
// persisted through their sub-orchestrators; supplied collections replace the
// stored ones wholesale after re-resolution. The merged aggregate is then
// revalidated as a whole, so one malformed field can never corrupt the stored
// row.
func (u *TeamUsecase) Update(ctx context.Context, patch *entities.TeamPatch, id uint) (*entities.Team, error) {
	if patch == nil {
		return nil, domainerrors.BadRequest("team payload must not be empty")
	}

	var updated *entities.Team
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		existing, err := u.teamRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := applyTeamPatch(existing, patch); err != nil {
			return err
		}
		if err := u.persistReferences(ctx, patch.Shift, patch.Company, patch.TeamType, existing); err != nil {
			return err
		}
		if err := u.resolveCollections(ctx, existing, patch.Firefighters, patch.Vehicles, patch.Resources); err != nil {
			return err
		}

		if err := ValidateTeamAggregate(existing); err != nil {
			return err
		}
		if err := u.teamRepo.Save(ctx, existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the team and cascades over its owned collections. The
// referenced shift, company and team type survive the delete.
func (u *TeamUsecase) Delete(ctx context.Context, id uint) error {
	return u.uow.Do(ctx, func(ctx context.Context) error {
		exists, err := u.teamRepo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domainerrors.NotFoundID("team", id)
		}
		return u.teamRepo.Delete(ctx, id)
	})
}

// persistReferences pushes each supplied reference through its
// sub-orchestrator and swaps the persisted instance onto the target team.
// Absent references leave the target untouched.
func (u *TeamUsecase) persistReferences(ctx context.Context, shift *entities.Shift, company *entities.Company, teamType *entities.TeamType, target *entities.Team) error {
	if shift != nil {
		saved, err := u.shiftUC.Save(ctx, shift)
		if err != nil {
			return domainerrors.WithPath("shift", err)
		}
		target.Shift = saved
	}
	if company != nil {
		saved, err := u.companyUC.Save(ctx, company)
		if err != nil {
			return domainerrors.WithPath("company", err)
		}
		target.Company = saved
	}
	if teamType != nil {
		saved, err := u.teamTypeUC.Save(ctx, teamType)
		if err != nil {
			return domainerrors.WithPath("teamType", err)
		}
		target.TeamType = saved
	}
	return nil
}

// resolveCollections re-resolves supplied owned collections by id, replacing
// the target's slices with the materialized rows. Nil slices mean "leave the
// stored collection alone"; a missing id anywhere aborts without touching the
// target.
func (u *TeamUsecase) resolveCollections(ctx context.Context, target *entities.Team, firefighters []entities.Firefighter, vehicles []entities.Vehicle, resources []entities.Resource) error {
	if firefighters != nil {
		resolved, err := u.resolver.Firefighters(ctx, firefighterIDList(firefighters))
		if err != nil {
			return domainerrors.WithPath("firefighters", err)
		}
		target.Firefighters = resolved
	}
	if vehicles != nil {
		resolved, err := u.resolver.Vehicles(ctx, vehicleIDList(vehicles))
		if err != nil {
			return domainerrors.WithPath("vehicles", err)
		}
		target.Vehicles = resolved
	}
	if resources != nil {
		resolved, err := u.resolver.Resources(ctx, resourceIDList(resources))
		if err != nil {
			return domainerrors.WithPath("resources", err)
		}
		target.Resources = resolved
	}
	return nil
}

// applyTeamPatch copies each present scalar field onto the team, validating
// it before the copy. One reusable merge instead of per-field conditionals at
// every call site.
func applyTeamPatch(team *entities.Team, patch *entities.TeamPatch) error {
	if patch.Name.Valid {
		if err := requireString("name", patch.Name.String, maxNameLen); err != nil {
			return err
		}
		team.Name = patch.Name.String
	}
	if patch.MemberCount.Valid {
		if patch.MemberCount.Int < 0 {
			return domainerrors.Validation("memberCount", "must not be negative")
		}
		team.MemberCount = patch.MemberCount.Int
	}
	if patch.IsActive.Valid {
		team.IsActive = patch.IsActive.Bool
	}
	if patch.Leader.Valid {
		if err := requireString("leader", patch.Leader.String, maxNameLen); err != nil {
			return err
		}
		team.Leader = patch.Leader.String
	}
	return nil
}

func firefighterIDList(items []entities.Firefighter) []uint {
	ids := make([]uint, 0, len(items))
	for i := range items {
		ids = append(ids, items[i].ID)
	}
	return ids
}

func vehicleIDList(items []entities.Vehicle) []uint {
	ids := make([]uint, 0, len(items))
	for i := range items {
		ids = append(ids, items[i].ID)
	}
	return ids
}

func resourceIDList(items []entities.Resource) []uint {
	ids := make([]uint, 0, len(items))
	for i := range items {
		ids = append(ids, items[i].ID)
	}
	return ids
}

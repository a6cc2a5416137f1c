package handlers

import (
	"context"
	"time"

	"safe-rescue.backend/internal/domain/entities"
	domainerrors "safe-rescue.backend/internal/domain/errors"
	"safe-rescue.backend/internal/usecases"
)

// Map-backed repository stubs. Handlers are exercised against real usecases
// wired over these, so validation and error mapping run end to end without a
// database.

type stubUnitOfWork struct{}

func (stubUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubTeamRepo struct {
	items  map[uint]*entities.Team
	nextID uint
	saves  int
}

func newStubTeamRepo() *stubTeamRepo {
	return &stubTeamRepo{items: map[uint]*entities.Team{}, nextID: 1}
}

func (s *stubTeamRepo) Save(_ context.Context, team *entities.Team) error {
	if team.ID == 0 {
		team.ID = s.nextID
		s.nextID++
	}
	copied := *team
	s.items[team.ID] = &copied
	s.saves++
	return nil
}

func (s *stubTeamRepo) GetByID(_ context.Context, id uint) (*entities.Team, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.NotFoundID("team", id)
	}
	copied := *item
	return &copied, nil
}

func (s *stubTeamRepo) List(_ context.Context) ([]*entities.Team, error) {
	out := make([]*entities.Team, 0, len(s.items))
	for id := uint(1); id < s.nextID; id++ {
		if item, ok := s.items[id]; ok {
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *stubTeamRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := s.items[id]
	return ok, nil
}

func (s *stubTeamRepo) Delete(_ context.Context, id uint) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.NotFoundID("team", id)
	}
	delete(s.items, id)
	return nil
}

func (s *stubTeamRepo) ListActiveWithExpiredShift(_ context.Context, now time.Time, limit int) ([]uint, error) {
	var ids []uint
	for id, item := range s.items {
		if item.IsActive && item.Shift != nil && item.Shift.EndsAt.Before(now) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *stubTeamRepo) Deactivate(_ context.Context, ids []uint) error {
	for _, id := range ids {
		if item, ok := s.items[id]; ok {
			item.IsActive = false
		}
	}
	return nil
}

type stubShiftRepo struct {
	items  map[uint]*entities.Shift
	nextID uint
}

func newStubShiftRepo() *stubShiftRepo {
	return &stubShiftRepo{items: map[uint]*entities.Shift{}, nextID: 1}
}

func (s *stubShiftRepo) Save(_ context.Context, shift *entities.Shift) error {
	if shift.ID == 0 {
		shift.ID = s.nextID
		s.nextID++
	}
	copied := *shift
	s.items[shift.ID] = &copied
	return nil
}

func (s *stubShiftRepo) GetByID(_ context.Context, id uint) (*entities.Shift, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.NotFoundID("shift", id)
	}
	copied := *item
	return &copied, nil
}

func (s *stubShiftRepo) List(_ context.Context) ([]*entities.Shift, error) {
	out := make([]*entities.Shift, 0, len(s.items))
	for id := uint(1); id < s.nextID; id++ {
		if item, ok := s.items[id]; ok {
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *stubShiftRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := s.items[id]
	return ok, nil
}

func (s *stubShiftRepo) Delete(_ context.Context, id uint) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.NotFoundID("shift", id)
	}
	delete(s.items, id)
	return nil
}

type stubCompanyRepo struct {
	items  map[uint]*entities.Company
	nextID uint
}

func newStubCompanyRepo() *stubCompanyRepo {
	return &stubCompanyRepo{items: map[uint]*entities.Company{}, nextID: 1}
}

func (s *stubCompanyRepo) Save(_ context.Context, company *entities.Company) error {
	for id, existing := range s.items {
		if existing.Name == company.Name && id != company.ID {
			return domainerrors.Conflict("company name already registered")
		}
	}
	if company.ID == 0 {
		company.ID = s.nextID
		s.nextID++
	}
	copied := *company
	s.items[company.ID] = &copied
	return nil
}

func (s *stubCompanyRepo) GetByID(_ context.Context, id uint) (*entities.Company, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.NotFoundID("company", id)
	}
	copied := *item
	return &copied, nil
}

func (s *stubCompanyRepo) List(_ context.Context) ([]*entities.Company, error) {
	out := make([]*entities.Company, 0, len(s.items))
	for id := uint(1); id < s.nextID; id++ {
		if item, ok := s.items[id]; ok {
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *stubCompanyRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := s.items[id]
	return ok, nil
}

func (s *stubCompanyRepo) Delete(_ context.Context, id uint) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.NotFoundID("company", id)
	}
	delete(s.items, id)
	return nil
}

type stubLocationRepo struct {
	items  map[uint]*entities.Location
	nextID uint
}

func newStubLocationRepo() *stubLocationRepo {
	return &stubLocationRepo{items: map[uint]*entities.Location{}, nextID: 1}
}

func (s *stubLocationRepo) Save(_ context.Context, location *entities.Location) error {
	if location.ID == 0 {
		location.ID = s.nextID
		s.nextID++
	}
	copied := *location
	s.items[location.ID] = &copied
	return nil
}

func (s *stubLocationRepo) GetByID(_ context.Context, id uint) (*entities.Location, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.NotFoundID("location", id)
	}
	copied := *item
	return &copied, nil
}

func (s *stubLocationRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := s.items[id]
	return ok, nil
}

type stubTeamTypeRepo struct {
	items  map[uint]*entities.TeamType
	nextID uint
}

func newStubTeamTypeRepo() *stubTeamTypeRepo {
	return &stubTeamTypeRepo{items: map[uint]*entities.TeamType{}, nextID: 1}
}

func (s *stubTeamTypeRepo) Save(_ context.Context, teamType *entities.TeamType) error {
	if teamType.ID == 0 {
		teamType.ID = s.nextID
		s.nextID++
	}
	copied := *teamType
	s.items[teamType.ID] = &copied
	return nil
}

func (s *stubTeamTypeRepo) GetByID(_ context.Context, id uint) (*entities.TeamType, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.NotFoundID("team type", id)
	}
	copied := *item
	return &copied, nil
}

func (s *stubTeamTypeRepo) List(_ context.Context) ([]*entities.TeamType, error) {
	out := make([]*entities.TeamType, 0, len(s.items))
	for id := uint(1); id < s.nextID; id++ {
		if item, ok := s.items[id]; ok {
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *stubTeamTypeRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := s.items[id]
	return ok, nil
}

func (s *stubTeamTypeRepo) Delete(_ context.Context, id uint) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.NotFoundID("team type", id)
	}
	delete(s.items, id)
	return nil
}

type stubFirefighterRepo struct {
	items  map[uint]*entities.Firefighter
	nextID uint
}

func newStubFirefighterRepo() *stubFirefighterRepo {
	return &stubFirefighterRepo{items: map[uint]*entities.Firefighter{}, nextID: 1}
}

func (s *stubFirefighterRepo) Save(_ context.Context, firefighter *entities.Firefighter) error {
	if firefighter.ID == 0 {
		firefighter.ID = s.nextID
		s.nextID++
	}
	copied := *firefighter
	s.items[firefighter.ID] = &copied
	return nil
}

func (s *stubFirefighterRepo) GetByID(_ context.Context, id uint) (*entities.Firefighter, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.NotFoundID("firefighter", id)
	}
	copied := *item
	return &copied, nil
}

func (s *stubFirefighterRepo) List(_ context.Context) ([]*entities.Firefighter, error) {
	out := make([]*entities.Firefighter, 0, len(s.items))
	for id := uint(1); id < s.nextID; id++ {
		if item, ok := s.items[id]; ok {
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *stubFirefighterRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := s.items[id]
	return ok, nil
}

type stubVehicleRepo struct {
	items  map[uint]*entities.Vehicle
	nextID uint
}

func newStubVehicleRepo() *stubVehicleRepo {
	return &stubVehicleRepo{items: map[uint]*entities.Vehicle{}, nextID: 1}
}

func (s *stubVehicleRepo) Save(_ context.Context, vehicle *entities.Vehicle) error {
	if vehicle.ID == 0 {
		vehicle.ID = s.nextID
		s.nextID++
	}
	copied := *vehicle
	s.items[vehicle.ID] = &copied
	return nil
}

func (s *stubVehicleRepo) GetByID(_ context.Context, id uint) (*entities.Vehicle, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.NotFoundID("vehicle", id)
	}
	copied := *item
	return &copied, nil
}

func (s *stubVehicleRepo) List(_ context.Context) ([]*entities.Vehicle, error) {
	out := make([]*entities.Vehicle, 0, len(s.items))
	for id := uint(1); id < s.nextID; id++ {
		if item, ok := s.items[id]; ok {
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *stubVehicleRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := s.items[id]
	return ok, nil
}

type stubResourceRepo struct {
	items  map[uint]*entities.Resource
	nextID uint
}

func newStubResourceRepo() *stubResourceRepo {
	return &stubResourceRepo{items: map[uint]*entities.Resource{}, nextID: 1}
}

func (s *stubResourceRepo) Save(_ context.Context, resource *entities.Resource) error {
	if resource.ID == 0 {
		resource.ID = s.nextID
		s.nextID++
	}
	copied := *resource
	s.items[resource.ID] = &copied
	return nil
}

func (s *stubResourceRepo) GetByID(_ context.Context, id uint) (*entities.Resource, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.NotFoundID("resource", id)
	}
	copied := *item
	return &copied, nil
}

func (s *stubResourceRepo) List(_ context.Context) ([]*entities.Resource, error) {
	out := make([]*entities.Resource, 0, len(s.items))
	for id := uint(1); id < s.nextID; id++ {
		if item, ok := s.items[id]; ok {
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *stubResourceRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := s.items[id]
	return ok, nil
}

// handlerFixture wires every handler over the stub repos
type handlerFixture struct {
	teamRepo        *stubTeamRepo
	shiftRepo       *stubShiftRepo
	companyRepo     *stubCompanyRepo
	locationRepo    *stubLocationRepo
	teamTypeRepo    *stubTeamTypeRepo
	firefighterRepo *stubFirefighterRepo
	vehicleRepo     *stubVehicleRepo
	resourceRepo    *stubResourceRepo

	teamHandler     *TeamHandler
	shiftHandler    *ShiftHandler
	companyHandler  *CompanyHandler
	teamTypeHandler *TeamTypeHandler
}

func newHandlerFixture() *handlerFixture {
	f := &handlerFixture{
		teamRepo:        newStubTeamRepo(),
		shiftRepo:       newStubShiftRepo(),
		companyRepo:     newStubCompanyRepo(),
		locationRepo:    newStubLocationRepo(),
		teamTypeRepo:    newStubTeamTypeRepo(),
		firefighterRepo: newStubFirefighterRepo(),
		vehicleRepo:     newStubVehicleRepo(),
		resourceRepo:    newStubResourceRepo(),
	}

	resolver := usecases.NewResolver(f.shiftRepo, f.companyRepo, f.teamTypeRepo, f.firefighterRepo, f.vehicleRepo, f.resourceRepo)
	shiftUC := usecases.NewShiftUsecase(f.shiftRepo)
	companyUC := usecases.NewCompanyUsecase(f.companyRepo, f.locationRepo)
	teamTypeUC := usecases.NewTeamTypeUsecase(f.teamTypeRepo)
	teamUC := usecases.NewTeamUsecase(f.teamRepo, shiftUC, companyUC, teamTypeUC, resolver, stubUnitOfWork{})
	assignmentUC := usecases.NewAssignmentUsecase(f.teamRepo, resolver, stubUnitOfWork{})

	f.teamHandler = NewTeamHandler(teamUC, assignmentUC)
	f.shiftHandler = NewShiftHandler(shiftUC)
	f.companyHandler = NewCompanyHandler(companyUC)
	f.teamTypeHandler = NewTeamTypeHandler(teamTypeUC)
	return f
}

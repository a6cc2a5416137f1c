package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"safe-rescue.backend/internal/domain/entities"
	domainerrors "safe-rescue.backend/internal/domain/errors"
	"safe-rescue.backend/internal/infrastructure/models"
)

type TeamRepositoryImpl struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepositoryImpl {
	return &TeamRepositoryImpl{db: db}
}

// Save persists the team row with its reference FKs, then reconciles the owned
// collections against the entity's slices: rows attached to the team but
// missing from a slice are deleted (orphan removal), rows named in a slice get
// their team_id pointed at this team. Ownership is encoded here explicitly
// rather than through gorm association cascades.
func (r *TeamRepositoryImpl) Save(ctx context.Context, team *entities.Team) error {
	db := GetDB(ctx, r.db)

	m := r.toModel(team)
	if err := db.Omit("Shift", "Company", "TeamType", "Firefighters", "Vehicles", "Resources").
		Save(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.Conflict("team violates a uniqueness constraint")
		}
		return err
	}
	team.ID = m.ID
	team.CreatedAt = m.CreatedAt
	team.UpdatedAt = m.UpdatedAt

	if err := r.replaceOwned(db, m.ID, &models.Firefighter{}, firefighterIDs(team.Firefighters)); err != nil {
		return err
	}
	if err := r.replaceOwned(db, m.ID, &models.Vehicle{}, vehicleIDs(team.Vehicles)); err != nil {
		return err
	}
	return r.replaceOwned(db, m.ID, &models.Resource{}, resourceIDs(team.Resources))
}

func (r *TeamRepositoryImpl) replaceOwned(db *gorm.DB, teamID uint, model interface{}, ids []uint) error {
	if len(ids) == 0 {
		return db.Where("team_id = ?", teamID).Delete(model).Error
	}
	if err := db.Where("team_id = ? AND id NOT IN ?", teamID, ids).Delete(model).Error; err != nil {
		return err
	}
	return db.Model(model).Where("id IN ?", ids).Update("team_id", teamID).Error
}

func (r *TeamRepositoryImpl) GetByID(ctx context.Context, id uint) (*entities.Team, error) {
	db := GetDB(ctx, r.db)

	var m models.Team
	err := db.
		Preload("Shift").
		Preload("Company").
		Preload("Company.Location").
		Preload("TeamType").
		Preload("Firefighters", orderByID).
		Preload("Vehicles", orderByID).
		Preload("Resources", orderByID).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.NotFoundID("team", id)
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *TeamRepositoryImpl) List(ctx context.Context) ([]*entities.Team, error) {
	db := GetDB(ctx, r.db)

	var ms []models.Team
	err := db.
		Preload("Shift").
		Preload("Company").
		Preload("Company.Location").
		Preload("TeamType").
		Preload("Firefighters", orderByID).
		Preload("Vehicles", orderByID).
		Preload("Resources", orderByID).
		Order("id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.Team, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *TeamRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	db := GetDB(ctx, r.db)

	var count int64
	if err := db.Model(&models.Team{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes the team and its owned rows. The referenced shift, company
// and team-type rows survive.
func (r *TeamRepositoryImpl) Delete(ctx context.Context, id uint) error {
	db := GetDB(ctx, r.db)

	if err := db.Where("team_id = ?", id).Delete(&models.Firefighter{}).Error; err != nil {
		return err
	}
	if err := db.Where("team_id = ?", id).Delete(&models.Vehicle{}).Error; err != nil {
		return err
	}
	if err := db.Where("team_id = ?", id).Delete(&models.Resource{}).Error; err != nil {
		return err
	}

	result := db.Delete(&models.Team{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.NotFoundID("team", id)
	}
	return nil
}

func (r *TeamRepositoryImpl) ListActiveWithExpiredShift(ctx context.Context, now time.Time, limit int) ([]uint, error) {
	db := GetDB(ctx, r.db)

	var ids []uint
	err := db.Model(&models.Team{}).
		Joins("JOIN shifts ON shifts.id = teams.shift_id").
		Where("teams.is_active = ? AND shifts.ends_at < ?", true, now).
		Limit(limit).
		Pluck("teams.id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *TeamRepositoryImpl) Deactivate(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	db := GetDB(ctx, r.db)
	return db.Model(&models.Team{}).Where("id IN ?", ids).Update("is_active", false).Error
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func (r *TeamRepositoryImpl) toEntity(m *models.Team) *entities.Team {
	team := &entities.Team{
		ID:          m.ID,
		Name:        m.Name,
		MemberCount: m.MemberCount,
		IsActive:    m.IsActive,
		Leader:      m.Leader,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Shift != nil {
		team.Shift = shiftToEntity(m.Shift)
	}
	if m.Company != nil {
		team.Company = companyToEntity(m.Company)
	}
	if m.TeamType != nil {
		team.TeamType = teamTypeToEntity(m.TeamType)
	}
	for i := range m.Firefighters {
		team.Firefighters = append(team.Firefighters, *firefighterToEntity(&m.Firefighters[i]))
	}
	for i := range m.Vehicles {
		team.Vehicles = append(team.Vehicles, *vehicleToEntity(&m.Vehicles[i]))
	}
	for i := range m.Resources {
		team.Resources = append(team.Resources, *resourceToEntity(&m.Resources[i]))
	}
	return team
}

func (r *TeamRepositoryImpl) toModel(e *entities.Team) *models.Team {
	m := &models.Team{
		ID:          e.ID,
		Name:        e.Name,
		MemberCount: e.MemberCount,
		IsActive:    e.IsActive,
		Leader:      e.Leader,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.Shift != nil {
		id := e.Shift.ID
		m.ShiftID = &id
	}
	if e.Company != nil {
		id := e.Company.ID
		m.CompanyID = &id
	}
	if e.TeamType != nil {
		id := e.TeamType.ID
		m.TeamTypeID = &id
	}
	return m
}

func firefighterIDs(items []entities.Firefighter) []uint {
	ids := make([]uint, 0, len(items))
	for i := range items {
		ids = append(ids, items[i].ID)
	}
	return ids
}

func vehicleIDs(items []entities.Vehicle) []uint {
	ids := make([]uint, 0, len(items))
	for i := range items {
		ids = append(ids, items[i].ID)
	}
	return ids
}

func resourceIDs(items []entities.Resource) []uint {
	ids := make([]uint, 0, len(items))
	for i := range items {
		ids = append(ids, items[i].ID)
	}
	return ids
}

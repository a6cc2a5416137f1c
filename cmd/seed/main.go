// Command seed migrates the schema and loads a small set of development data:
// shifts, companies with locations, team types, a free-standing roster pool
// and a couple of fully-assembled teams.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"safe-rescue.backend/internal/config"
	"safe-rescue.backend/internal/domain/entities"
	"safe-rescue.backend/internal/infrastructure/models"
	"safe-rescue.backend/internal/infrastructure/repositories"
	"safe-rescue.backend/internal/usecases"
	"safe-rescue.backend/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger.Init(cfg.Server.Env)
	defer logger.Sync()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.Database.URL(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Location{},
		&models.Company{},
		&models.Shift{},
		&models.TeamType{},
		&models.Team{},
		&models.Firefighter{},
		&models.Vehicle{},
		&models.Resource{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	ctx := context.Background()
	return seed(ctx, db)
}

func seed(ctx context.Context, db *gorm.DB) error {
	teamRepo := repositories.NewTeamRepository(db)
	shiftRepo := repositories.NewShiftRepository(db)
	companyRepo := repositories.NewCompanyRepository(db)
	locationRepo := repositories.NewLocationRepository(db)
	teamTypeRepo := repositories.NewTeamTypeRepository(db)
	firefighterRepo := repositories.NewFirefighterRepository(db)
	vehicleRepo := repositories.NewVehicleRepository(db)
	resourceRepo := repositories.NewResourceRepository(db)
	uow := repositories.NewUnitOfWork(db)

	resolver := usecases.NewResolver(shiftRepo, companyRepo, teamTypeRepo, firefighterRepo, vehicleRepo, resourceRepo)
	shiftUC := usecases.NewShiftUsecase(shiftRepo)
	companyUC := usecases.NewCompanyUsecase(companyRepo, locationRepo)
	teamTypeUC := usecases.NewTeamTypeUsecase(teamTypeRepo)
	teamUC := usecases.NewTeamUsecase(teamRepo, shiftUC, companyUC, teamTypeUC, resolver, uow)

	today := time.Now().Truncate(time.Hour)

	shifts := []*entities.Shift{
		{Name: "morning", StartsAt: today.Add(8 * time.Hour), EndsAt: today.Add(16 * time.Hour)},
		{Name: "evening", StartsAt: today.Add(16 * time.Hour), EndsAt: today.Add(24 * time.Hour)},
		{Name: "night", StartsAt: today.Add(24 * time.Hour), EndsAt: today.Add(32 * time.Hour)},
	}
	for _, s := range shifts {
		if _, err := shiftUC.Save(ctx, s); err != nil {
			return fmt.Errorf("seeding shift %q: %w", s.Name, err)
		}
	}

	companies := []*entities.Company{
		{Name: "First Valparaiso Company", Location: &entities.Location{
			Street: "Av. Brasil", HouseNumber: 1234, District: "Valparaiso", Region: "Valparaiso",
		}},
		{Name: "Second Santiago Company", Location: &entities.Location{
			Street: "Av. Libertador", HouseNumber: 980, District: "Santiago", Region: "Metropolitana",
		}},
	}
	for _, c := range companies {
		if _, err := companyUC.Save(ctx, c); err != nil {
			return fmt.Errorf("seeding company %q: %w", c.Name, err)
		}
	}

	teamTypes := []*entities.TeamType{
		{Name: "rescue"},
		{Name: "hazmat"},
		{Name: "first response"},
	}
	for _, tt := range teamTypes {
		if _, err := teamTypeUC.Save(ctx, tt); err != nil {
			return fmt.Errorf("seeding team type %q: %w", tt.Name, err)
		}
	}

	firefighters := []*entities.Firefighter{
		{FirstName: "Ana", PaternalName: "Rojas", MaternalName: "Silva", Phone: 912345601},
		{FirstName: "Pedro", PaternalName: "Fuentes", MaternalName: "Leiva", Phone: 912345602},
		{FirstName: "Camila", PaternalName: "Vera", MaternalName: "Munoz", Phone: 912345603},
		{FirstName: "Diego", PaternalName: "Castro", MaternalName: "Pinto", Phone: 912345604},
	}
	for _, f := range firefighters {
		if err := firefighterRepo.Save(ctx, f); err != nil {
			return fmt.Errorf("seeding firefighter %q: %w", f.FirstName, err)
		}
	}

	vehicles := []*entities.Vehicle{
		{Make: "Mercedes", Model: "Atego", Plate: "BJ1234", Driver: "Ana Rojas", Status: "operational"},
		{Make: "Renault", Model: "Midlum", Plate: "CK5678", Driver: "Pedro Fuentes", Status: "operational"},
	}
	for _, v := range vehicles {
		if err := vehicleRepo.Save(ctx, v); err != nil {
			return fmt.Errorf("seeding vehicle %q: %w", v.Plate, err)
		}
	}

	resources := []*entities.Resource{
		{Name: "Fire hose 50m", Kind: "equipment", Quantity: 12},
		{Name: "Breathing apparatus", Kind: "equipment", Quantity: 8},
		{Name: "First aid kit", Kind: "medical", Quantity: 20},
	}
	for _, r := range resources {
		if err := resourceRepo.Save(ctx, r); err != nil {
			return fmt.Errorf("seeding resource %q: %w", r.Name, err)
		}
	}

	teams := []*entities.Team{
		{
			Name:        "Alpha",
			MemberCount: 4,
			IsActive:    true,
			Leader:      "Ana Rojas",
			Shift:       shifts[0],
			Company:     companies[0],
			TeamType:    teamTypes[0],
			Firefighters: []entities.Firefighter{
				*firefighters[0], *firefighters[1],
			},
			Vehicles:  []entities.Vehicle{*vehicles[0]},
			Resources: []entities.Resource{*resources[0], *resources[2]},
		},
		{
			Name:        "Bravo",
			MemberCount: 3,
			IsActive:    true,
			Leader:      "Camila Vera",
			Shift:       shifts[1],
			Company:     companies[1],
			TeamType:    teamTypes[2],
			Firefighters: []entities.Firefighter{
				*firefighters[2], *firefighters[3],
			},
			Vehicles:  []entities.Vehicle{*vehicles[1]},
			Resources: []entities.Resource{*resources[1]},
		},
	}
	for _, team := range teams {
		if _, err := teamUC.Save(ctx, team); err != nil {
			return fmt.Errorf("seeding team %q: %w", team.Name, err)
		}
	}

	log.Printf("Seeded %d shifts, %d companies, %d team types, %d firefighters, %d vehicles, %d resources, %d teams",
		len(shifts), len(companies), len(teamTypes), len(firefighters), len(vehicles), len(resources), len(teams))
	return nil
}

package usecases

import (
	"fmt"
	"strings"
	"time"

	"safe-rescue.backend/internal/domain/entities"
	domainerrors "safe-rescue.backend/internal/domain/errors"
)

// Field constraints shared by every entity validator. All validators here are
// pure: no I/O, no mutation of their argument.
const (
	maxNameLen     = 50
	maxResourceLen = 100
	maxPlateLen    = 6
	maxPhoneDigits = 9
	maxHouseDigits = 5
	maxCountDigits = 2
	maxHourDigits  = 2
)

func digitCount(n int64) int {
	if n < 0 {
		n = -n
	}
	return len(fmt.Sprintf("%d", n))
}

func requireString(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return domainerrors.Validation(field, "required")
	}
	return limitString(field, value, max)
}

func limitString(field, value string, max int) error {
	if len(value) > max {
		return domainerrors.Validation(field, fmt.Sprintf("exceeds max length %d", max))
	}
	return nil
}

// ValidateTeamFields checks the team's own scalar fields
func ValidateTeamFields(team *entities.Team) error {
	if err := requireString("name", team.Name, maxNameLen); err != nil {
		return err
	}
	if team.MemberCount < 0 {
		return domainerrors.Validation("memberCount", "must not be negative")
	}
	if digitCount(int64(team.MemberCount)) > maxCountDigits {
		return domainerrors.Validation("memberCount", fmt.Sprintf("exceeds max length %d", maxCountDigits))
	}
	return limitString("leader", team.Leader, maxNameLen)
}

// ValidateTeamAggregate runs the field checks plus the aggregate-level
// required checks on name and leader. The leader requirement exists only at
// this level; both layers intentionally check name.
func ValidateTeamAggregate(team *entities.Team) error {
	if err := ValidateTeamFields(team); err != nil {
		return err
	}
	if strings.TrimSpace(team.Name) == "" {
		return domainerrors.Validation("name", "required")
	}
	if strings.TrimSpace(team.Leader) == "" {
		return domainerrors.Validation("leader", "required")
	}
	return nil
}

// ValidateShift checks name and timestamps. Both timestamps are required
// before ordering is considered; duration is derived, never validated from
// input.
func ValidateShift(shift *entities.Shift) error {
	if err := requireString("name", shift.Name, maxNameLen); err != nil {
		return err
	}
	if shift.StartsAt.IsZero() || shift.EndsAt.IsZero() {
		return domainerrors.Validation("dates", "required")
	}
	if !shift.StartsAt.Before(shift.EndsAt) {
		return domainerrors.Validation("dates", "start must be before end")
	}
	if digitCount(ComputeShiftDuration(shift.StartsAt, shift.EndsAt)) > maxHourDigits {
		return domainerrors.Validation("durationHours", fmt.Sprintf("exceeds max length %d", maxHourDigits))
	}
	return nil
}

// ComputeShiftDuration returns the whole hours between start and end
func ComputeShiftDuration(start, end time.Time) int64 {
	return int64(end.Sub(start).Hours())
}

// ValidateCompany checks the company name and its owned location
func ValidateCompany(company *entities.Company) error {
	if err := requireString("name", company.Name, maxNameLen); err != nil {
		return err
	}
	if err := ValidateLocation(company.Location); err != nil {
		return domainerrors.WithPath("location", err)
	}
	return nil
}

// ValidateLocation checks a street address
func ValidateLocation(location *entities.Location) error {
	if location == nil {
		return domainerrors.Validation("location", "required")
	}
	if location.HouseNumber <= 0 {
		return domainerrors.Validation("houseNumber", "must be positive")
	}
	if digitCount(int64(location.HouseNumber)) > maxHouseDigits {
		return domainerrors.Validation("houseNumber", fmt.Sprintf("exceeds max length %d", maxHouseDigits))
	}
	if err := requireString("street", location.Street, maxNameLen); err != nil {
		return err
	}
	if err := requireString("district", location.District, maxNameLen); err != nil {
		return err
	}
	return requireString("region", location.Region, maxNameLen)
}

// ValidateTeamType checks the classification name
func ValidateTeamType(teamType *entities.TeamType) error {
	return requireString("name", teamType.Name, maxNameLen)
}

// ValidateFirefighter checks a team member record
func ValidateFirefighter(firefighter *entities.Firefighter) error {
	if err := requireString("firstName", firefighter.FirstName, maxNameLen); err != nil {
		return err
	}
	if err := requireString("paternalName", firefighter.PaternalName, maxNameLen); err != nil {
		return err
	}
	if err := requireString("maternalName", firefighter.MaternalName, maxNameLen); err != nil {
		return err
	}
	if firefighter.Phone <= 0 {
		return domainerrors.Validation("phone", "must be positive")
	}
	if digitCount(firefighter.Phone) > maxPhoneDigits {
		return domainerrors.Validation("phone", fmt.Sprintf("exceeds max length %d", maxPhoneDigits))
	}
	return nil
}

// ValidateVehicle checks a team vehicle record
func ValidateVehicle(vehicle *entities.Vehicle) error {
	if err := requireString("make", vehicle.Make, maxNameLen); err != nil {
		return err
	}
	if err := requireString("model", vehicle.Model, maxNameLen); err != nil {
		return err
	}
	if err := requireString("plate", vehicle.Plate, maxPlateLen); err != nil {
		return err
	}
	if err := requireString("driver", vehicle.Driver, maxNameLen); err != nil {
		return err
	}
	return requireString("status", vehicle.Status, maxNameLen)
}

// ValidateResource checks an equipment stock record
func ValidateResource(resource *entities.Resource) error {
	if err := requireString("name", resource.Name, maxResourceLen); err != nil {
		return err
	}
	if err := requireString("kind", resource.Kind, maxNameLen); err != nil {
		return err
	}
	if resource.Quantity < 0 {
		return domainerrors.Validation("quantity", "must not be negative")
	}
	return nil
}

package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"safe-rescue.backend/internal/domain/entities"
	domainerrors "safe-rescue.backend/internal/domain/errors"
	"safe-rescue.backend/internal/usecases"
)

func TestShiftUsecase_Save_ComputesDuration(t *testing.T) {
	repo := new(MockShiftRepository)
	uc := usecases.NewShiftUsecase(repo)

	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	shift := &entities.Shift{Name: "morning", StartsAt: start, EndsAt: start.Add(8 * time.Hour)}

	repo.On("Save", context.Background(), shift).Return(nil).Once()

	saved, err := uc.Save(context.Background(), shift)
	require.NoError(t, err)
	assert.Equal(t, int64(8), saved.DurationHours)
	repo.AssertExpectations(t)
}

func TestShiftUsecase_Save_IgnoresClientDuration(t *testing.T) {
	repo := new(MockShiftRepository)
	uc := usecases.NewShiftUsecase(repo)

	start := time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC)
	shift := &entities.Shift{Name: "night", StartsAt: start, EndsAt: start.Add(8 * time.Hour), DurationHours: 999}

	repo.On("Save", context.Background(), shift).Return(nil).Once()

	saved, err := uc.Save(context.Background(), shift)
	require.NoError(t, err)
	assert.Equal(t, int64(8), saved.DurationHours)
}

func TestShiftUsecase_Save_InvalidDates(t *testing.T) {
	repo := new(MockShiftRepository)
	uc := usecases.NewShiftUsecase(repo)

	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	shift := &entities.Shift{Name: "morning", StartsAt: start, EndsAt: start}

	_, err := uc.Save(context.Background(), shift)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
	repo.AssertNotCalled(t, "Save")
}

func TestShiftUsecase_Update_MergesAndRecomputes(t *testing.T) {
	repo := new(MockShiftRepository)
	uc := usecases.NewShiftUsecase(repo)

	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	stored := &entities.Shift{ID: 4, Name: "morning", StartsAt: start, EndsAt: start.Add(8 * time.Hour), DurationHours: 8}

	repo.On("GetByID", context.Background(), uint(4)).Return(stored, nil).Once()
	repo.On("Save", context.Background(), stored).Return(nil).Once()

	patch := &entities.ShiftPatch{EndsAt: null.TimeFrom(start.Add(12 * time.Hour))}
	updated, err := uc.Update(context.Background(), patch, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(12), updated.DurationHours)
	assert.Equal(t, "morning", updated.Name)
	repo.AssertExpectations(t)
}

func TestShiftUsecase_Update_InvalidMergeNotPersisted(t *testing.T) {
	repo := new(MockShiftRepository)
	uc := usecases.NewShiftUsecase(repo)

	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	stored := &entities.Shift{ID: 4, Name: "morning", StartsAt: start, EndsAt: start.Add(8 * time.Hour)}

	repo.On("GetByID", context.Background(), uint(4)).Return(stored, nil).Once()

	// moving the end before the start must fail after the merge
	patch := &entities.ShiftPatch{EndsAt: null.TimeFrom(start.Add(-time.Hour))}
	_, err := uc.Update(context.Background(), patch, 4)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
	repo.AssertNotCalled(t, "Save")
}

func TestShiftUsecase_Update_NotFound(t *testing.T) {
	repo := new(MockShiftRepository)
	uc := usecases.NewShiftUsecase(repo)

	repo.On("GetByID", context.Background(), uint(999)).Return(nil, domainerrors.NotFoundID("shift", 999)).Once()

	_, err := uc.Update(context.Background(), &entities.ShiftPatch{}, 999)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestShiftUsecase_Delete(t *testing.T) {
	repo := new(MockShiftRepository)
	uc := usecases.NewShiftUsecase(repo)

	repo.On("Exists", context.Background(), uint(3)).Return(true, nil).Once()
	repo.On("Delete", context.Background(), uint(3)).Return(nil).Once()
	require.NoError(t, uc.Delete(context.Background(), 3))

	repo.On("Exists", context.Background(), uint(999)).Return(false, nil).Once()
	err := uc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	repo.AssertExpectations(t)
}

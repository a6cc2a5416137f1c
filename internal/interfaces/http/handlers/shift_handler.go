package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"safe-rescue.backend/internal/domain/entities"
	domainerrors "safe-rescue.backend/internal/domain/errors"
	"safe-rescue.backend/internal/interfaces/http/response"
	"safe-rescue.backend/internal/usecases"
)

type ShiftHandler struct {
	shiftUC *usecases.ShiftUsecase
}

func NewShiftHandler(shiftUC *usecases.ShiftUsecase) *ShiftHandler {
	return &ShiftHandler{shiftUC: shiftUC}
}

// ListShifts
// GET /api/v1/shifts
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	items, err := h.shiftUC.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(items) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// GetShift
// GET /api/v1/shifts/:id
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	shift, err := h.shiftUC.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, shift)
}

// CreateShift validates dates and stores the shift with a server-computed
// duration; any client-supplied duration is ignored.
// POST /api/v1/shifts
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var input struct {
		Name     string    `json:"name"`
		StartsAt time.Time `json:"startsAt"`
		EndsAt   time.Time `json:"endsAt"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	shift := &entities.Shift{
		Name:     input.Name,
		StartsAt: input.StartsAt,
		EndsAt:   input.EndsAt,
	}
	saved, err := h.shiftUC.Save(c.Request.Context(), shift)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message": "Shift created",
		"shift":   saved,
	})
}

// UpdateShift
// PUT /api/v1/shifts/:id
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var patch entities.ShiftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	shift, err := h.shiftUC.Update(c.Request.Context(), &patch, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "Shift updated",
		"shift":   shift,
	})
}

// DeleteShift
// DELETE /api/v1/shifts/:id
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.shiftUC.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Shift deleted"})
}

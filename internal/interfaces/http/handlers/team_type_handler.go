package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"safe-rescue.backend/internal/domain/entities"
	domainerrors "safe-rescue.backend/internal/domain/errors"
	"safe-rescue.backend/internal/interfaces/http/response"
	"safe-rescue.backend/internal/usecases"
)

type TeamTypeHandler struct {
	teamTypeUC *usecases.TeamTypeUsecase
}

func NewTeamTypeHandler(teamTypeUC *usecases.TeamTypeUsecase) *TeamTypeHandler {
	return &TeamTypeHandler{teamTypeUC: teamTypeUC}
}

// ListTeamTypes
// GET /api/v1/team-types
func (h *TeamTypeHandler) ListTeamTypes(c *gin.Context) {
	items, err := h.teamTypeUC.List(c.Request.Context())
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

// GetTeamType
// GET /api/v1/team-types/:id
func (h *TeamTypeHandler) GetTeamType(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	tt, err := h.teamTypeUC.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, tt)
}

// CreateTeamType
// POST /api/v1/team-types
func (h *TeamTypeHandler) CreateTeamType(c *gin.Context) {
	var tt entities.TeamType
	if err := c.ShouldBindJSON(&tt); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	tt.ID = 0

	saved, err := h.teamTypeUC.Save(c.Request.Context(), &tt)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message":  "Team type created",
		"teamType": saved,
	})
}

// UpdateTeamType
// PUT /api/v1/team-types/:id
func (h *TeamTypeHandler) UpdateTeamType(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var patch entities.TeamTypePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	tt, err := h.teamTypeUC.Update(c.Request.Context(), &patch, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message":  "Team type updated",
		"teamType": tt,
	})
}

// DeleteTeamType
// DELETE /api/v1/team-types/:id
func (h *TeamTypeHandler) DeleteTeamType(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.teamTypeUC.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Team type deleted"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"safe-rescue.backend/internal/domain/entities"
	domainerrors "safe-rescue.backend/internal/domain/errors"
	"safe-rescue.backend/internal/interfaces/http/response"
	"safe-rescue.backend/internal/usecases"
	"safe-rescue.backend/pkg/utils"
)

type TeamHandler struct {
	teamUC       *usecases.TeamUsecase
	assignmentUC *usecases.AssignmentUsecase
}

func NewTeamHandler(teamUC *usecases.TeamUsecase, assignmentUC *usecases.AssignmentUsecase) *TeamHandler {
	return &TeamHandler{teamUC: teamUC, assignmentUC: assignmentUC}
}

// ListTeams returns every team with its references and collections. With
// ?page and ?limit the result is windowed and wrapped with pagination
// metadata; without them the full list comes back as a plain array.
// GET /api/v1/teams
func (h *TeamHandler) ListTeams(c *gin.Context) {
	var params utils.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	items, err := h.teamUC.FindAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(items) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	params = utils.GetPaginationParams(params.Page, params.Limit)
	if params.Limit == 0 {
		response.Success(c, http.StatusOK, items)
		return
	}

	total := int64(len(items))
	offset := params.CalculateOffset()
	if offset > len(items) {
		offset = len(items)
	}
	end := offset + params.Limit
	if end > len(items) {
		end = len(items)
	}
	response.Success(c, http.StatusOK, gin.H{
		"teams": items[offset:end],
		"meta":  utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// GetTeam returns one team.
// GET /api/v1/teams/:id
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	team, err := h.teamUC.FindByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, team)
}

// CreateTeam saves a full team aggregate.
// POST /api/v1/teams
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var team entities.Team
	if err := c.ShouldBindJSON(&team); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	team.ID = 0

	saved, err := h.teamUC.Save(c.Request.Context(), &team)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message": "Team created",
		"team":    saved,
	})
}

// UpdateTeam merges a partial update onto the stored team.
// PUT /api/v1/teams/:id
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var patch entities.TeamPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	team, err := h.teamUC.Update(c.Request.Context(), &patch, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "Team updated",
		"team":    team,
	})
}

// DeleteTeam removes a team and its owned collections.
// DELETE /api/v1/teams/:id
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.teamUC.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Team deleted"})
}

// AssignShift replaces the team's shift reference.
// POST /api/v1/teams/:id/assign-shift/:shiftId
func (h *TeamHandler) AssignShift(c *gin.Context) {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	shiftID, err := parseIDParam(c, "shiftId")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.assignmentUC.AssignShift(c.Request.Context(), teamID, shiftID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Shift assigned to team"})
}

// AssignCompany replaces the team's company reference.
// POST /api/v1/teams/:id/assign-company/:companyId
func (h *TeamHandler) AssignCompany(c *gin.Context) {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	companyID, err := parseIDParam(c, "companyId")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.assignmentUC.AssignCompany(c.Request.Context(), teamID, companyID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Company assigned to team"})
}

// AssignTeamType replaces the team's type reference.
// POST /api/v1/teams/:id/assign-team-type/:teamTypeId
func (h *TeamHandler) AssignTeamType(c *gin.Context) {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	teamTypeID, err := parseIDParam(c, "teamTypeId")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.assignmentUC.AssignTeamType(c.Request.Context(), teamID, teamTypeID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Team type assigned to team"})
}

// AssignFirefighters replaces the team's firefighter collection with the
// comma-separated id list.
// POST /api/v1/teams/:id/assign-firefighters/:firefighterIds
func (h *TeamHandler) AssignFirefighters(c *gin.Context) {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	ids, err := parseIDListParam(c, "firefighterIds")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.assignmentUC.AssignFirefighters(c.Request.Context(), teamID, ids); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Firefighters assigned to team"})
}

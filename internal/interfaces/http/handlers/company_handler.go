package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"safe-rescue.backend/internal/domain/entities"
	domainerrors "safe-rescue.backend/internal/domain/errors"
	"safe-rescue.backend/internal/interfaces/http/response"
	"safe-rescue.backend/internal/usecases"
)

type CompanyHandler struct {
	companyUC *usecases.CompanyUsecase
}

func NewCompanyHandler(companyUC *usecases.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{companyUC: companyUC}
}

// ListCompanies
// GET /api/v1/companies
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	items, err := h.companyUC.List(c.Request.Context())
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

// GetCompany
// GET /api/v1/companies/:id
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	company, err := h.companyUC.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, company)
}

// CreateCompany
// POST /api/v1/companies
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var company entities.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	company.ID = 0

	saved, err := h.companyUC.Save(c.Request.Context(), &company)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message": "Company created",
		"company": saved,
	})
}

// UpdateCompany
// PUT /api/v1/companies/:id
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var patch entities.CompanyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	company, err := h.companyUC.Update(c.Request.Context(), &patch, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "Company updated",
		"company": company,
	})
}

// DeleteCompany
// DELETE /api/v1/companies/:id
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.companyUC.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Company deleted"})
}

// AssignLocation points a company at an existing location.
// POST /api/v1/companies/:id/assign-location/:locationId
func (h *CompanyHandler) AssignLocation(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	locationID, err := parseIDParam(c, "locationId")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.companyUC.AssignLocation(c.Request.Context(), id, locationID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Location assigned"})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolioBackend/internal/domain/dto"
	"portfolioBackend/internal/service"
)

type SkillHandler struct {
	skillService service.SkillService
}

func NewSkillHandler(skillService service.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// AddSkill handles POST /skill/add.
func (h *SkillHandler) AddSkill(c *gin.Context) {
	var req dto.SkillCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please enter Name, Percentage & Image URL")
		return
	}

	skill, err := h.skillService.CreateSkill(c.Request.Context(), &req)
	if err != nil {
		respondDomainError(c, err, "Skill not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "New Skill Added Successfully",
		"skill":   skill,
	})
}

// GetSkills handles GET /skill/all. An empty collection is a valid result.
func (h *SkillHandler) GetSkills(c *gin.Context) {
	skills, err := h.skillService.GetSkills(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"skills":  skills,
	})
}

// UpdateSkill handles PUT /skill/:id with partial-update semantics.
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// Ids are opaque to clients; a malformed one matches nothing.
		respondError(c, http.StatusNotFound, "Skill not found")
		return
	}

	var req dto.SkillUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	skill, err := h.skillService.UpdateSkill(c.Request.Context(), id, &req)
	if err != nil {
		respondDomainError(c, err, "Skill not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Skill updated successfully",
		"skill":   skill,
	})
}

// DeleteSkill handles DELETE /skill/:id. A second delete of the same id
// reports not-found.
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Skill not found")
		return
	}

	if err := h.skillService.DeleteSkill(c.Request.Context(), id); err != nil {
		respondDomainError(c, err, "Skill not found")
		return
	}

	respondMessage(c, http.StatusOK, "Skill Deleted Successfully")
}

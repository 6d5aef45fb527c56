package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolioBackend/internal/domain/dto"
	"portfolioBackend/internal/service"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// AddProject handles POST /project/add.
func (h *ProjectHandler) AddProject(c *gin.Context) {
	var req dto.ProjectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please enter Title, Desc & Image URL")
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), &req)
	if err != nil {
		respondDomainError(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Project Added Successfully",
		"project": project,
	})
}

// GetProjects handles GET /project/all.
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects, err := h.projectService.GetProjects(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"projects": projects,
	})
}

// UpdateProject handles PUT /project/:id with partial-update semantics.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Project not found")
		return
	}

	var req dto.ProjectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), id, &req)
	if err != nil {
		respondDomainError(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project updated successfully",
		"project": project,
	})
}

// DeleteProject handles DELETE /project/:id.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Project not found")
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), id); err != nil {
		respondDomainError(c, err, "Project not found")
		return
	}

	respondMessage(c, http.StatusOK, "Project Deleted Successfully")
}

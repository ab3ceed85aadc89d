package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/protecfeu/erp_backend/internal/core/ports/services"
	"github.com/protecfeu/erp_backend/internal/dto"
	"github.com/protecfeu/erp_backend/internal/middleware"
)

// projectHandler handles HTTP requests related to projects.
type projectHandler struct {
	projectService portssvc.ProjectService
}

func newProjectHandler(ps portssvc.ProjectService) *projectHandler {
	return &projectHandler{projectService: ps}
}

// registerProjectRoutes registers project routes and nests the cash box
// routes underneath them.
func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectService, cashBoxService portssvc.CashBoxService) {
	h := newProjectHandler(projectService)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:projectID", h.getProject)
	}
	registerCashBoxRoutes(projects, cashBoxService)
}

// createProject godoc
// @Summary Create a project
// @Description Creates a works project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create project"
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// getProject godoc
// @Summary Get a project by ID
// @Tags projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to retrieve project"
// @Security BearerAuth
// @Router /projects/{projectID} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectID")
	if !ok {
		return
	}
	project, err := h.projectService.GetProjectByID(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// listProjects godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {array} dto.ProjectResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list projects"
// @Security BearerAuth
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	var pagination dto.PaginationQuery
	if err := c.ShouldBindQuery(&pagination); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters: " + err.Error()})
		return
	}
	limit, offset := pagination.LimitOffset()

	projects, err := h.projectService.ListProjects(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list projects")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponses(projects))
}

package services

import (
	"context"
	"log/slog"

	"github.com/protecfeu/erp_backend/internal/core/domain"
	portsrepo "github.com/protecfeu/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/protecfeu/erp_backend/internal/core/ports/services"
	"github.com/protecfeu/erp_backend/internal/dto"
)

type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepository
}

// NewProjectService creates the project service.
func NewProjectService(projectRepo portsrepo.ProjectRepository) portssvc.ProjectService {
	return &projectService{projectRepo: projectRepo}
}

var _ portssvc.ProjectService = (*projectService)(nil)

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	project := domain.Project{
		Name:      req.Name,
		Client:    req.Client,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	saved, err := s.projectRepo.SaveProject(ctx, project)
	if err != nil {
		s.LogError(ctx, err, "Failed to create project", slog.String("name", req.Name))
		return nil, err
	}
	s.LogInfo(ctx, "Project created", slog.Int64("project_id", saved.ProjectID))
	return saved, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, projectID int64) (*domain.Project, error) {
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *projectService) ListProjects(ctx context.Context, limit, offset int) ([]domain.Project, error) {
	return s.projectRepo.ListProjects(ctx, limit, offset)
}

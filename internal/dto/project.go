package dto

import (
	"time"

	"github.com/protecfeu/erp_backend/internal/core/domain"
)

// CreateProjectRequest defines the payload for creating a project.
type CreateProjectRequest struct {
	Name      string     `json:"name" binding:"required"`
	Client    string     `json:"client,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ProjectID int64      `json:"projectID"`
	Name      string     `json:"name"`
	Client    string     `json:"client,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// ToProjectResponse converts a domain project.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID: p.ProjectID,
		Name:      p.Name,
		Client:    p.Client,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
	}
}

// ToProjectResponses converts a slice of domain projects.
func ToProjectResponses(projects []domain.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = ToProjectResponse(&projects[i])
	}
	return responses
}

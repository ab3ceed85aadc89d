package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/protecfeu/erp_backend/internal/apperrors"
	"github.com/protecfeu/erp_backend/internal/core/domain"
	portsrepo "github.com/protecfeu/erp_backend/internal/core/ports/repositories"
)

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(db Querier) portsrepo.ProjectRepository {
	return &PgxProjectRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ProjectRepository = (*PgxProjectRepository)(nil)

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	query := `
		INSERT INTO projects (name, client, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING project_id;
	`
	err := r.DB.QueryRow(ctx, query, project.Name, project.Client, project.StartDate, project.EndDate).Scan(&project.ProjectID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: project with name %q already exists", apperrors.ErrDuplicate, project.Name)
		}
		return nil, apperrors.NewAppError(500, "failed to save project", err)
	}
	return &project, nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID int64) (*domain.Project, error) {
	query := `SELECT project_id, name, client, start_date, end_date FROM projects WHERE project_id = $1;`
	var project domain.Project
	err := r.DB.QueryRow(ctx, query, projectID).Scan(&project.ProjectID, &project.Name, &project.Client, &project.StartDate, &project.EndDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: project %d", apperrors.ErrNotFound, projectID)
		}
		return nil, fmt.Errorf("failed to find project %d: %w", projectID, err)
	}
	return &project, nil
}

func (r *PgxProjectRepository) ListProjects(ctx context.Context, limit, offset int) ([]domain.Project, error) {
	query := `
		SELECT project_id, name, client, start_date, end_date
		FROM projects
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var project domain.Project
		if err := rows.Scan(&project.ProjectID, &project.Name, &project.Client, &project.StartDate, &project.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}

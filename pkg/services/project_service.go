package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/project"
)

// ProjectService manages projects, the scoping unit for hash lists,
// campaigns and agent visibility.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// CreateProjectRequest is the operator payload for a new project.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateProject creates a new project
func (s *ProjectService) CreateProject(httpCtx context.Context, req CreateProjectRequest) (*ent.Project, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p, err := s.client.Project.Create().
		SetName(req.Name).
		SetDescription(req.Description).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(ctx context.Context, id int) (*ent.Project, error) {
	p, err := s.client.Project.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// ListProjects returns all projects, newest first.
func (s *ProjectService) ListProjects(ctx context.Context) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().
		Order(ent.Desc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

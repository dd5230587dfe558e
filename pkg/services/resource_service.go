package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/resource"
)

// ResourceService registers shared files (word lists, rule lists, mask
// lists, charsets) and tracks their line counts. The server never reads
// the files; uploads happen out of band against the file_handle.
type ResourceService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewResourceService creates a new ResourceService.
func NewResourceService(client *ent.Client) *ResourceService {
	return &ResourceService{
		client: client,
		logger: slog.With("component", "resource_service"),
	}
}

// CreateResourceRequest registers resource metadata. LineCount may be
// nil when the ingest count has not finished yet.
type CreateResourceRequest struct {
	Name         string
	FileName     string
	ResourceType resource.ResourceType
	LineCount    *int64
	ByteSize     int64
	Checksum     string
	Sensitive    bool
	ProjectIDs   []int
}

// CreateResource registers a resource and mints its storage handle.
func (s *ResourceService) CreateResource(httpCtx context.Context, req CreateResourceRequest) (*ent.Resource, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.FileName == "" {
		return nil, NewValidationError("file_name", "required")
	}
	if err := resource.ResourceTypeValidator(req.ResourceType); err != nil {
		return nil, NewValidationError("resource_type", "unknown resource type")
	}
	if req.LineCount != nil && *req.LineCount < 0 {
		return nil, NewValidationError("line_count", "must not be negative")
	}
	// A sensitive resource without a project scope would be visible to
	// every project, which is the opposite of what the flag means.
	if req.Sensitive && len(req.ProjectIDs) == 0 {
		return nil, NewValidationError("project_ids", "sensitive resources require at least one project")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	handle := fmt.Sprintf("resources/%s/%s", uuid.NewString(), req.FileName)
	res, err := s.client.Resource.Create().
		SetName(req.Name).
		SetFileName(req.FileName).
		SetFileHandle(handle).
		SetResourceType(req.ResourceType).
		SetNillableLineCount(req.LineCount).
		SetByteSize(req.ByteSize).
		SetChecksum(req.Checksum).
		SetSensitive(req.Sensitive).
		AddProjectIDs(req.ProjectIDs...).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: resource %q", ErrAlreadyExists, req.Name)
		}
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	s.logger.Info("resource registered",
		"resource_id", res.ID, "resource_type", res.ResourceType, "file_handle", res.FileHandle)
	return res, nil
}

// GetResource returns a resource by ID.
func (s *ResourceService) GetResource(ctx context.Context, id int) (*ent.Resource, error) {
	res, err := s.client.Resource.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: resource %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}
	return res, nil
}

// ListResources returns all resources, newest first.
func (s *ResourceService) ListResources(ctx context.Context) ([]*ent.Resource, error) {
	resources, err := s.client.Resource.Query().
		Order(ent.Desc(resource.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	return resources, nil
}

// SetLineCount records the asynchronous line count once ingest finishes.
// Attacks referencing the resource become dispatchable on the next
// matcher pass.
func (s *ResourceService) SetLineCount(httpCtx context.Context, id int, lineCount int64) (*ent.Resource, error) {
	if lineCount < 0 {
		return nil, NewValidationError("line_count", "must not be negative")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := s.client.Resource.UpdateOneID(id).
		SetLineCount(lineCount).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: resource %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to set line count: %w", err)
	}
	s.logger.Info("resource counted", "resource_id", id, "line_count", lineCount)
	return res, nil
}

// DeleteResource removes a resource that no attack references.
func (s *ResourceService) DeleteResource(httpCtx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	refs, err := s.client.Attack.Query().
		Where(attack.Or(
			attack.WordListIDEQ(id),
			attack.RuleListIDEQ(id),
			attack.MaskListIDEQ(id),
		)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count attack references: %w", err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: resource %d is referenced by %d attacks", ErrGuardRejected, id, refs)
	}

	if err := s.client.Resource.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: resource %d", ErrNotFound, id)
		}
		return fmt.Errorf("failed to delete resource: %w", err)
	}
	s.logger.Info("resource deleted", "resource_id", id)
	return nil
}

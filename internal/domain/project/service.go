package project

import (
	"context"
	"strings"

	"hrms/internal/domain/identity"
)

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

// Create validates the draft and, when clean, persists a new project with the
// end date derived from the start date and duration. The returned issue map is
// non-empty exactly when the draft was rejected; no project is created then.
func (s *Service) Create(ctx context.Context, creatorID string, draft Draft) (Project, map[string]string, error) {
	if issues := ValidateDraft(draft); len(issues) > 0 {
		return Project{}, issues, nil
	}

	p := fromDraft(draft)
	p.CreatedBy = creatorID

	id, err := s.Store.Create(ctx, p)
	if err != nil {
		return Project{}, nil, err
	}
	p.ID = id
	return p, nil, nil
}

// Update replaces every field of an existing project except its id and
// creator.
func (s *Service) Update(ctx context.Context, id string, draft Draft) (Project, map[string]string, error) {
	existing, err := s.Store.Get(ctx, id)
	if err != nil {
		return Project{}, nil, err
	}
	if issues := ValidateDraft(draft); len(issues) > 0 {
		return Project{}, issues, nil
	}

	p := fromDraft(draft)
	p.ID = existing.ID
	p.CreatedBy = existing.CreatedBy

	if err := s.Store.Update(ctx, p); err != nil {
		return Project{}, nil, err
	}
	return p, nil, nil
}

// Complete transitions a project to completed. Status is the only field that
// moves.
func (s *Service) Complete(ctx context.Context, id string) (Project, error) {
	existing, err := s.Store.Get(ctx, id)
	if err != nil {
		return Project{}, err
	}
	if existing.Status == StatusCompleted {
		return existing, nil
	}
	if err := s.Store.UpdateStatus(ctx, id, StatusCompleted); err != nil {
		return Project{}, err
	}
	existing.Status = StatusCompleted
	return existing, nil
}

func (s *Service) Get(ctx context.Context, id string) (Project, error) {
	return s.Store.Get(ctx, id)
}

// ListFor returns every project for managerial roles and only assigned
// projects for employees.
func (s *Service) ListFor(ctx context.Context, viewer identity.Identity) ([]Project, error) {
	if identity.IsManagerial(viewer.Role) {
		return s.Store.List(ctx)
	}
	return s.Store.ListAssigned(ctx, viewer.ID)
}

func fromDraft(draft Draft) Project {
	status := draft.Status
	if status == "" {
		status = StatusUpcoming
	}
	return Project{
		Name:              strings.TrimSpace(draft.Name),
		StartDate:         draft.StartDate,
		EndDate:           EndDate(draft.StartDate, draft.DurationDays),
		DurationDays:      draft.DurationDays,
		AssignedEmployees: draft.AssignedEmployees,
		Status:            status,
		Description:       strings.TrimSpace(draft.Description),
	}
}

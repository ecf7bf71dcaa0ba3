package service

import (
	"context"
	"log"

	"github.com/renoquote/quote-backend/internal/ai"
	"github.com/renoquote/quote-backend/internal/quotes/domain"
)

// ArtifactStore persists an uploaded image and returns its public URL.
type ArtifactStore interface {
	Store(ctx context.Context, data []byte, filename string) (string, error)
}

// ProjectRepo is the persistence surface the pipeline needs.
type ProjectRepo interface {
	Create(ctx context.Context, userName, projectDetails string, imageURL *string) (*domain.Project, error)
	ListAll(ctx context.Context) ([]domain.Project, error)
}

// ListingCache caches the full project listing. Optional.
type ListingCache interface {
	Get(ctx context.Context) ([]domain.Project, bool, error)
	Set(ctx context.Context, projects []domain.Project) error
	Invalidate(ctx context.Context) error
}

// SubmitResult is the response payload for a completed submission.
type SubmitResult struct {
	ProjectID int64
	Quote     string
}

// PipelineService runs the submission pipeline:
// validate, store artifact, persist, generate, respond.
// The project is persisted before the AI call, so a generation failure
// leaves a durable record behind and never orphans a quote.
type PipelineService struct {
	repo  ProjectRepo
	store ArtifactStore
	gen   ai.QuoteGenerator
	cache ListingCache
}

// NewPipelineService creates the orchestrator. cache may be nil.
func NewPipelineService(repo ProjectRepo, store ArtifactStore, gen ai.QuoteGenerator, cache ListingCache) *PipelineService {
	return &PipelineService{
		repo:  repo,
		store: store,
		gen:   gen,
		cache: cache,
	}
}

// Submit processes one raw submission end to end. Errors are typed by the
// failing stage: *domain.ValidationError before any side effect,
// *domain.StorageError or *domain.PersistenceError on an aborted write,
// *domain.AIServiceError after the project is already durable.
func (s *PipelineService) Submit(ctx context.Context, sub domain.Submission) (*SubmitResult, error) {
	valid, err := domain.ValidateSubmission(sub)
	if err != nil {
		return nil, err
	}

	var imageURL *string
	if valid.Attachment != nil {
		url, err := s.store.Store(ctx, valid.Attachment.Data, valid.Attachment.Filename)
		if err != nil {
			return nil, &domain.StorageError{Err: err}
		}
		imageURL = &url
	}

	project, err := s.repo.Create(ctx, valid.UserName, valid.ProjectDetails, imageURL)
	if err != nil {
		return nil, &domain.PersistenceError{Err: err}
	}
	s.invalidateListing(ctx)

	prompt := ai.BuildPrompt(project.ProjectDetails, project.ImageURL)
	quote, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, &domain.AIServiceError{ProjectID: project.ID, Err: err}
	}

	return &SubmitResult{ProjectID: project.ID, Quote: quote}, nil
}

// ListProjects returns all projects in creation order, serving from the
// listing cache when possible.
func (s *PipelineService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			log.Printf("[quotes] listing cache read failed: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	projects, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, &domain.PersistenceError{Err: err}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, projects); err != nil {
			log.Printf("[quotes] listing cache write failed: %v", err)
		}
	}
	return projects, nil
}

// invalidateListing drops the cached listing after a create. A failed
// invalidation is logged, not fatal: the TTL bounds staleness.
func (s *PipelineService) invalidateListing(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("[quotes] listing cache invalidate failed: %v", err)
	}
}

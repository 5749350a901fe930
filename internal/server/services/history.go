package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/legalease/legallite/internal/common"
	"github.com/legalease/legallite/internal/server/models"
	"github.com/legalease/legallite/internal/server/repositories/uploads"
)

type HistoryService struct {
	repo uploads.Repository
}

func NewHistoryService(repo uploads.Repository) *HistoryService {
	return &HistoryService{repo: repo}
}

// Append records one successful summarization for a user. The timestamp is
// generated by the store.
func (s *HistoryService) Append(ctx context.Context, email, filename, summary, storageKey string) (*models.Upload, error) {

	if email == "" {
		return nil, fmt.Errorf("%w: owner email is required", common.ErrValidation)
	}

	upload := &models.Upload{
		UserEmail:  email,
		Filename:   filename,
		Summary:    summary,
		StorageKey: storageKey,
	}

	upload, err := s.repo.Create(ctx, upload)
	if err != nil {
		return nil, fmt.Errorf("error appending history: %w", err)
	}

	return upload, nil
}

// Get returns one of the user's history records. Records owned by other
// users surface as common.ErrNotFound.
func (s *HistoryService) Get(ctx context.Context, email, id string) (*models.Upload, error) {
	upload, err := s.repo.GetByID(ctx, email, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error getting history record: %w", err)
	}
	return upload, nil
}

// List returns the user's history, newest first. A user with no uploads gets
// an empty slice.
func (s *HistoryService) List(ctx context.Context, email string) ([]*models.Upload, error) {
	records, err := s.repo.ListByUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error listing history: %w", err)
	}
	return records, nil
}

package uploads

import (
	"context"

	"github.com/legalease/legallite/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, upload *models.Upload) (*models.Upload, error)
	ListByUser(ctx context.Context, email string) ([]*models.Upload, error)
	GetByID(ctx context.Context, email, id string) (*models.Upload, error)
}

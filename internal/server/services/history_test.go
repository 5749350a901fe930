package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/legalease/legallite/internal/common"
	"github.com/legalease/legallite/internal/server/models"
)

type fakeUploadsRepo struct {
	createErr error
	listOut   []*models.Upload
	listErr   error
	getOut    *models.Upload
	getErr    error

	created []*models.Upload
}

func (f *fakeUploadsRepo) Create(ctx context.Context, u *models.Upload) (*models.Upload, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "up-1"
	u.CreatedAt = time.Now()
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUploadsRepo) ListByUser(ctx context.Context, email string) ([]*models.Upload, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeUploadsRepo) GetByID(ctx context.Context, email, id string) (*models.Upload, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func TestAppend_Success(t *testing.T) {
	repo := &fakeUploadsRepo{}
	s := NewHistoryService(repo)

	up, err := s.Append(context.Background(), "alice@example.com", "rental.pdf", "summary text", "uploads/key.pdf")
	if err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if up.ID == "" || up.UserEmail != "alice@example.com" || up.Filename != "rental.pdf" {
		t.Fatalf("unexpected record: %+v", up)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected exactly one insert, got %d", len(repo.created))
	}
}

func TestAppend_MissingOwner(t *testing.T) {
	s := NewHistoryService(&fakeUploadsRepo{})

	_, err := s.Append(context.Background(), "", "f.pdf", "s", "")
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestAppend_RepoFailure(t *testing.T) {
	s := NewHistoryService(&fakeUploadsRepo{createErr: errors.New("db down")})

	_, err := s.Append(context.Background(), "alice@example.com", "f.pdf", "s", "")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestList_PassesThroughOrder(t *testing.T) {
	t3 := &models.Upload{ID: "up-3"}
	t2 := &models.Upload{ID: "up-2"}
	t1 := &models.Upload{ID: "up-1"}
	s := NewHistoryService(&fakeUploadsRepo{listOut: []*models.Upload{t3, t2, t1}})

	got, err := s.List(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 3 || got[0].ID != "up-3" || got[2].ID != "up-1" {
		t.Fatalf("order not preserved: %+v", got)
	}
}

func TestList_Empty(t *testing.T) {
	s := NewHistoryService(&fakeUploadsRepo{listOut: []*models.Upload{}})

	got, err := s.List(context.Background(), "ghost@example.com")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty history, got %+v", got)
	}
}

func TestGet_Success(t *testing.T) {
	want := &models.Upload{ID: "up-1", UserEmail: "alice@example.com", Filename: "rental.pdf", StorageKey: "uploads/key.pdf"}
	s := NewHistoryService(&fakeUploadsRepo{getOut: want})

	got, err := s.Get(context.Background(), "alice@example.com", "up-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.ID != "up-1" || got.StorageKey != "uploads/key.pdf" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestGet_NotFoundPassesThrough(t *testing.T) {
	s := NewHistoryService(&fakeUploadsRepo{getErr: common.ErrNotFound})

	_, err := s.Get(context.Background(), "alice@example.com", "up-404")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

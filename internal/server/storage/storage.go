package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Store archives uploaded document bytes so a processed file can be
// retrieved later. Load returns common.ErrNotFound when the key is unknown.
type Store interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}

// NewStorageKey produces a date-partitioned object key for a fresh upload.
func NewStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("uploads/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

package models

import "time"

// Upload is one history record: a summarized document owned by a user.
// Records are appended once per successful summarization and never mutated.
type Upload struct {
	ID         string
	UserEmail  string
	Filename   string
	Summary    string
	StorageKey string
	CreatedAt  time.Time
}

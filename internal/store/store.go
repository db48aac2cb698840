package store

import (
	"context"

	"github.com/wn-marie/mood-journal/internal/models"
)

// EntryStore persists journal entries. Implementations assign the entry ID
// and creation timestamp on insert. All returns entries newest first.
type EntryStore interface {
	Insert(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error)
	All(ctx context.Context) ([]models.JournalEntry, error)
	Delete(ctx context.Context, id string) error
}

// PaymentStore persists payment records. SetStatusByExternalID reports whether
// any record matched the external gateway ID; a miss is not an error.
type PaymentStore interface {
	Insert(ctx context.Context, payment models.Payment) (models.Payment, error)
	All(ctx context.Context) ([]models.Payment, error)
	SetExternalID(ctx context.Context, id int64, externalID string) error
	SetStatusByExternalID(ctx context.Context, externalID string, status models.PaymentStatus) (bool, error)
}

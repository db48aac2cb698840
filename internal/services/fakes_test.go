package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wn-marie/mood-journal/internal/models"
)

// stubClassifier returns a fixed result and counts invocations.
type stubClassifier struct {
	calls  int
	result SentimentResult
}

func (s *stubClassifier) Classify(ctx context.Context, text string) SentimentResult {
	s.calls++
	return s.result
}

// fakeEntryStore is an in-memory EntryStore keeping entries newest first.
type fakeEntryStore struct {
	entries   []models.JournalEntry
	nextID    int
	insertErr error
}

func (f *fakeEntryStore) Insert(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	if f.insertErr != nil {
		return models.JournalEntry{}, f.insertErr
	}
	f.nextID++
	entry.ID = fmt.Sprintf("entry-%d", f.nextID)
	entry.CreatedAt = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC).Add(time.Duration(f.nextID) * time.Minute)
	f.entries = append([]models.JournalEntry{entry}, f.entries...)
	return entry, nil
}

func (f *fakeEntryStore) All(ctx context.Context) ([]models.JournalEntry, error) {
	return f.entries, nil
}

func (f *fakeEntryStore) Delete(ctx context.Context, id string) error {
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

// fakePaymentStore is an in-memory PaymentStore.
type fakePaymentStore struct {
	payments []models.Payment
	nextID   int64
}

func (f *fakePaymentStore) Insert(ctx context.Context, payment models.Payment) (models.Payment, error) {
	f.nextID++
	payment.ID = f.nextID
	payment.CreatedAt = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	f.payments = append([]models.Payment{payment}, f.payments...)
	return payment, nil
}

func (f *fakePaymentStore) All(ctx context.Context) ([]models.Payment, error) {
	return f.payments, nil
}

func (f *fakePaymentStore) SetExternalID(ctx context.Context, id int64, externalID string) error {
	for i := range f.payments {
		if f.payments[i].ID == id {
			f.payments[i].ExternalPaymentID = externalID
			return nil
		}
	}
	return nil
}

func (f *fakePaymentStore) SetStatusByExternalID(ctx context.Context, externalID string, status models.PaymentStatus) (bool, error) {
	for i := range f.payments {
		if f.payments[i].ExternalPaymentID == externalID && externalID != "" {
			f.payments[i].Status = status
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePaymentStore) byID(id int64) (models.Payment, bool) {
	for _, p := range f.payments {
		if p.ID == id {
			return p, true
		}
	}
	return models.Payment{}, false
}

// stubGateway returns a canned checkout result or error.
type stubGateway struct {
	calls  int
	result *CheckoutResult
	err    error
}

func (s *stubGateway) CreateCheckout(ctx context.Context, amount float64, planType string) (*CheckoutResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

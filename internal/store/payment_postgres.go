package store

import (
	"context"
	"database/sql"

	"github.com/wn-marie/mood-journal/internal/models"
)

// PostgresPaymentStore keeps payment records in the payments table.
type PostgresPaymentStore struct {
	db *sql.DB
}

func NewPostgresPaymentStore(db *sql.DB) *PostgresPaymentStore {
	return &PostgresPaymentStore{db: db}
}

// Insert creates a new payment row. The database assigns id and created_at.
func (s *PostgresPaymentStore) Insert(ctx context.Context, payment models.Payment) (models.Payment, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO payments (plan_type, amount, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, payment.PlanType, payment.Amount, string(payment.Status)).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

// All returns every payment, newest first.
func (s *PostgresPaymentStore) All(ctx context.Context) ([]models.Payment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, plan_type, amount, status, external_payment_id
		FROM payments
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]models.Payment, 0)
	for rows.Next() {
		var p models.Payment
		var status string
		var externalID sql.NullString
		if err := rows.Scan(&p.ID, &p.CreatedAt, &p.PlanType, &p.Amount, &status, &externalID); err != nil {
			return nil, err
		}
		p.Status = models.PaymentStatus(status)
		if externalID.Valid {
			p.ExternalPaymentID = externalID.String
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// SetExternalID records the gateway's payment ID against a local payment row.
func (s *PostgresPaymentStore) SetExternalID(ctx context.Context, id int64, externalID string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE payments SET external_payment_id = $1 WHERE id = $2
	`, externalID, id)
	return err
}

// SetStatusByExternalID updates the status of the payment matching the gateway
// ID. Returns false when no row matched, which callers treat as a no-op.
func (s *PostgresPaymentStore) SetStatusByExternalID(ctx context.Context, externalID string, status models.PaymentStatus) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE payments SET status = $1 WHERE external_payment_id = $2
	`, string(status), externalID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

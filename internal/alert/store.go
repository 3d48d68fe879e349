package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"farescout/pkg/db"
)

type Store struct {
	db db.SQLExecutor
}

func NewStore(executor db.SQLExecutor) *Store {
	return &Store{db: executor}
}

func (s *Store) Create(ctx context.Context, req CreateRequest) (*Alert, error) {
	a := &Alert{
		ID:            uuid.NewString(),
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		MaxPrice:      req.MaxPrice,
		Currency:      req.Currency,
		Email:         req.Email,
		CreatedAt:     time.Now().UTC(),
	}

	query := `INSERT INTO price_alerts (id, origin, destination, departure_date, max_price, currency, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := s.db.ExecContext(ctx, query,
		a.ID, a.Origin, a.Destination, a.DepartureDate, a.MaxPrice, a.Currency, a.Email, a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert alert: %w", err)
	}

	return a, nil
}

func (s *Store) ListByEmail(ctx context.Context, email string) ([]Alert, error) {
	query := `SELECT id, origin, destination, departure_date, max_price, currency, email, created_at
		FROM price_alerts WHERE email = $1 ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]Alert, 0)
	for rows.Next() {
		var a Alert
		if err := rows.Scan(&a.ID, &a.Origin, &a.Destination, &a.DepartureDate,
			&a.MaxPrice, &a.Currency, &a.Email, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read alerts: %w", err)
	}

	return alerts, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM price_alerts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete alert: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// File: database/repository/reservation/crud.go
package reservationRepo

import (
	"context"
	"fmt"

	"finalprojectapi/models"
)

// Create inserts the payload verbatim; the store stamps createdAt.
func (r *storeReservationRepo) Create(ctx context.Context, payload map[string]interface{}) (models.Reservation, error) {
	doc, err := r.store.Insert(ctx, models.ReservationsCollection, payload)
	if err != nil {
		return models.Reservation{}, fmt.Errorf("failed to create reservation: %w", err)
	}
	return models.Reservation{Document: doc}, nil
}

// DeleteByID succeeds whether or not the reservation existed.
func (r *storeReservationRepo) DeleteByID(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, models.ReservationsCollection, id); err != nil {
		return fmt.Errorf("failed to delete reservation %s: %w", id, err)
	}
	return nil
}

// File: database/repository/reservation/queries.go
package reservationRepo

import (
	"context"
	"fmt"

	"finalprojectapi/database/store"
	"finalprojectapi/models"
)

func (r *storeReservationRepo) GetAll(ctx context.Context) ([]models.Reservation, error) {
	docs, err := r.store.Find(ctx, models.ReservationsCollection, store.Query{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	return models.ReservationsFrom(docs), nil
}

// GetBySlot chains two equality predicates: date == d AND time == t.
func (r *storeReservationRepo) GetBySlot(ctx context.Context, date, time string) ([]models.Reservation, error) {
	q := store.Query{}.
		Where(models.FieldDate, store.OpEqual, date).
		Where(models.FieldTime, store.OpEqual, time)
	docs, err := r.store.Find(ctx, models.ReservationsCollection, q)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations for %s %s: %w", date, time, err)
	}
	return models.ReservationsFrom(docs), nil
}

func (r *storeReservationRepo) GetByTableSlot(ctx context.Context, tableID, date, time string) ([]models.Reservation, error) {
	q := store.Query{}.
		Where(models.FieldTableID, store.OpEqual, tableID).
		Where(models.FieldDate, store.OpEqual, date).
		Where(models.FieldTime, store.OpEqual, time).
		WithLimit(1)
	docs, err := r.store.Find(ctx, models.ReservationsCollection, q)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations for table %s at %s %s: %w", tableID, date, time, err)
	}
	return models.ReservationsFrom(docs), nil
}

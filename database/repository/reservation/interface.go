// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"

	"finalprojectapi/database/store"
	"finalprojectapi/models"
)

type ReservationRepository interface {
	GetAll(ctx context.Context) ([]models.Reservation, error)
	GetBySlot(ctx context.Context, date, time string) ([]models.Reservation, error)
	GetByTableSlot(ctx context.Context, tableID, date, time string) ([]models.Reservation, error)
	Create(ctx context.Context, payload map[string]interface{}) (models.Reservation, error)
	DeleteByID(ctx context.Context, id string) error
}

type storeReservationRepo struct {
	store store.DocumentStore
}

// NewReservationRepo constructs a ReservationRepository over the "reservations" collection.
func NewReservationRepo(ds store.DocumentStore) ReservationRepository {
	return &storeReservationRepo{store: ds}
}

package reservation

import (
	"context"

	reservationRepo "finalprojectapi/database/repository/reservation"
	tableRepo "finalprojectapi/database/repository/table"
	"finalprojectapi/models"
)

// ReservationService covers tables, reservations and availability resolution.
type ReservationService interface {
	ListTables(ctx context.Context) ([]models.Table, error)
	GetTable(ctx context.Context, id string) (models.Table, error)
	ResolveAvailable(ctx context.Context, q AvailabilityQuery) ([]models.Table, error)

	ListReservations(ctx context.Context) ([]models.Reservation, error)
	CreateReservation(ctx context.Context, payload map[string]interface{}) (models.Reservation, error)
	DeleteReservation(ctx context.Context, id string) error
}

// DefaultReservationService implements ReservationService. Guard is optional;
// without it concurrent bookings of the same table and slot both succeed.
type DefaultReservationService struct {
	Tables       tableRepo.TableRepository
	Reservations reservationRepo.ReservationRepository
	Guard        BookingGuard
}

func NewDefaultReservationService(
	tables tableRepo.TableRepository,
	reservations reservationRepo.ReservationRepository,
	guard BookingGuard,
) *DefaultReservationService {
	return &DefaultReservationService{
		Tables:       tables,
		Reservations: reservations,
		Guard:        guard,
	}
}

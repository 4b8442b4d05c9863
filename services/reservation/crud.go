package reservation

import (
	"context"
	"errors"
	"fmt"

	"finalprojectapi/models"
	"finalprojectapi/utils"

	"go.uber.org/zap"
)

func (s *DefaultReservationService) ListTables(ctx context.Context) ([]models.Table, error) {
	tables, err := s.Tables.GetAll(ctx)
	if err != nil {
		return nil, utils.StoreFailure(err)
	}
	return tables, nil
}

func (s *DefaultReservationService) GetTable(ctx context.Context, id string) (models.Table, error) {
	table, found, err := s.Tables.GetByID(ctx, id)
	if err != nil {
		return models.Table{}, utils.StoreFailure(err)
	}
	if !found {
		return models.Table{}, utils.NotFound("Table not found")
	}
	return table, nil
}

func (s *DefaultReservationService) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	list, err := s.Reservations.GetAll(ctx)
	if err != nil {
		return nil, utils.StoreFailure(err)
	}
	return list, nil
}

// CreateReservation stores the payload as given; no field is validated. With a
// guard configured, a second booking of the same table, date and time is
// rejected with a Conflict.
func (s *DefaultReservationService) CreateReservation(ctx context.Context, payload map[string]interface{}) (models.Reservation, error) {
	if s.Guard != nil {
		if slot, ok := slotOf(payload); ok {
			return s.createGuarded(ctx, slot, payload)
		}
	}
	created, err := s.Reservations.Create(ctx, payload)
	if err != nil {
		return models.Reservation{}, utils.StoreFailure(err)
	}
	return created, nil
}

func (s *DefaultReservationService) createGuarded(ctx context.Context, slot tableSlot, payload map[string]interface{}) (models.Reservation, error) {
	release, err := s.Guard.Acquire(ctx, slot.lockKey())
	if err != nil {
		if errors.Is(err, ErrSlotLocked) {
			return models.Reservation{}, utils.Conflict("Another booking for this table and time is in progress")
		}
		return models.Reservation{}, utils.StoreFailure(err)
	}
	defer release()

	existing, err := s.Reservations.GetByTableSlot(ctx, slot.tableID, slot.date, slot.time)
	if err != nil {
		return models.Reservation{}, utils.StoreFailure(err)
	}
	if len(existing) > 0 {
		utils.GetLogger().Info("Rejected double booking",
			zap.String("tableId", slot.tableID),
			zap.String("date", slot.date),
			zap.String("time", slot.time),
			zap.String("existing", existing[0].ID))
		return models.Reservation{}, utils.Conflict("Table is already reserved for this date and time")
	}

	created, err := s.Reservations.Create(ctx, payload)
	if err != nil {
		return models.Reservation{}, utils.StoreFailure(err)
	}
	return created, nil
}

// DeleteReservation reports success for ids that do not exist.
func (s *DefaultReservationService) DeleteReservation(ctx context.Context, id string) error {
	if err := s.Reservations.DeleteByID(ctx, id); err != nil {
		return utils.StoreFailure(err)
	}
	return nil
}

type tableSlot struct {
	tableID, date, time string
}

func (t tableSlot) lockKey() string {
	return fmt.Sprintf("reservation:lock:%s:%s:%s", t.tableID, t.date, t.time)
}

// slotOf extracts the booking key; records missing any part are invisible to
// availability matching and need no guard.
func slotOf(payload map[string]interface{}) (tableSlot, bool) {
	var slot tableSlot
	var ok bool
	if slot.tableID, ok = payload[models.FieldTableID].(string); !ok || slot.tableID == "" {
		return slot, false
	}
	if slot.date, ok = payload[models.FieldDate].(string); !ok || slot.date == "" {
		return slot, false
	}
	if slot.time, ok = payload[models.FieldTime].(string); !ok || slot.time == "" {
		return slot, false
	}
	return slot, true
}

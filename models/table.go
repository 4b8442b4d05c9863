// File: models/table.go
package models

// Collection and field names shared by the reservation side.
const (
	TablesCollection       = "tables"
	ReservationsCollection = "reservations"

	FieldCapacity  = "capacity"
	FieldTableID   = "tableId"
	FieldDate      = "date"
	FieldTime      = "time"
	FieldCreatedAt = "createdAt"
)

// Table is a restaurant table. Only capacity is interpreted; every other field
// is passed through as stored.
type Table struct {
	Document
}

// Capacity returns the seat count when the table carries a numeric capacity.
func (t Table) Capacity() (int64, bool) {
	f, ok := t.NumberField(FieldCapacity)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

// Reservation books a table for a date and time. Date and time are opaque
// strings compared verbatim.
type Reservation struct {
	Document
}

func (r Reservation) TableID() string {
	s, _ := r.StringField(FieldTableID)
	return s
}

func (r Reservation) Date() string {
	s, _ := r.StringField(FieldDate)
	return s
}

func (r Reservation) Time() string {
	s, _ := r.StringField(FieldTime)
	return s
}

// TablesFrom wraps raw documents.
func TablesFrom(docs []Document) []Table {
	out := make([]Table, 0, len(docs))
	for _, d := range docs {
		out = append(out, Table{Document: d})
	}
	return out
}

// ReservationsFrom wraps raw documents.
func ReservationsFrom(docs []Document) []Reservation {
	out := make([]Reservation, 0, len(docs))
	for _, d := range docs {
		out = append(out, Reservation{Document: d})
	}
	return out
}

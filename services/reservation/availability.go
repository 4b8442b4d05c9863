package reservation

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"

	"finalprojectapi/models"
	"finalprojectapi/utils"
)

// AvailabilityQuery narrows the table list. Date and Time only filter when
// both are set; they are compared as opaque strings. MatchNone marks a
// capacity bound that is not a number, which no table satisfies.
type AvailabilityQuery struct {
	Capacity  *int64
	MatchNone bool
	Date      string
	Time      string
}

// ParseCapacity reads the optional capacity query value leniently: leading
// whitespace, an optional sign, an optional 0x prefix, then as many digits as
// follow. "4.5" and "4people" both give 4. Empty means no bound. ok is false
// when a value is present but has no leading digits.
func ParseCapacity(raw string) (capacity *int64, ok bool) {
	if raw == "" {
		return nil, true
	}
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	base := 10
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}
	end := 0
	for end < len(s) && digitValue(s[end]) < base {
		end++
	}
	if end == 0 {
		return nil, false
	}

	n, err := strconv.ParseInt(s[:end], base, 64)
	if errors.Is(err, strconv.ErrRange) {
		n = math.MaxInt64
	} else if err != nil {
		return nil, false
	}
	if neg {
		n = -n
	}
	return &n, true
}

func digitValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return 99
}

func (s *DefaultReservationService) ResolveAvailable(ctx context.Context, q AvailabilityQuery) ([]models.Table, error) {
	var (
		tables []models.Table
		err    error
	)
	if q.MatchNone {
		return []models.Table{}, nil
	}
	if q.Capacity != nil {
		tables, err = s.Tables.GetWithMinCapacity(ctx, *q.Capacity)
	} else {
		tables, err = s.Tables.GetAll(ctx)
	}
	if err != nil {
		return nil, utils.StoreFailure(err)
	}

	if q.Date == "" || q.Time == "" {
		return tables, nil
	}

	reservations, err := s.Reservations.GetBySlot(ctx, q.Date, q.Time)
	if err != nil {
		return nil, utils.StoreFailure(err)
	}
	busy := make(map[string]struct{}, len(reservations))
	for _, r := range reservations {
		if id := r.TableID(); id != "" {
			busy[id] = struct{}{}
		}
	}

	free := make([]models.Table, 0, len(tables))
	for _, t := range tables {
		if _, taken := busy[t.ID]; !taken {
			free = append(free, t)
		}
	}
	return free, nil
}

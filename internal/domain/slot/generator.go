package slot

import (
	"time"

	"slotbooker/internal/domain/schedule"

	"github.com/google/uuid"
)

// Slot is a derived bookable interval. It is never persisted; identity is
// the (service type, start time) pair, which makes regeneration safe.
type Slot struct {
	ServiceTypeID uuid.UUID
	StartTime     time.Time
	EndTime       time.Time
	BookedCount   int
	Capacity      int
	Available     bool
}

// Occupancy maps slot start times (unix seconds) to the number of
// non-cancelled bookings holding that slot.
type Occupancy map[int64]int

// Generate walks each open window of the day in fixed duration-sized steps
// and emits every full-length slot, in order. A trailing remainder shorter
// than the duration is dropped. Identical inputs always produce an identical
// sequence.
func Generate(
	serviceTypeID uuid.UUID,
	date time.Time,
	windows []schedule.Window,
	duration time.Duration,
	capacity int,
	occupancy Occupancy,
) []Slot {
	if duration <= 0 || capacity <= 0 {
		return nil
	}

	slots := make([]Slot, 0, 16)
	for _, w := range windows {
		start := w.Start.At(date)
		end := w.End.At(date)

		for cur := start; !cur.Add(duration).After(end); cur = cur.Add(duration) {
			booked := occupancy[cur.Unix()]
			slots = append(slots, Slot{
				ServiceTypeID: serviceTypeID,
				StartTime:     cur,
				EndTime:       cur.Add(duration),
				BookedCount:   booked,
				Capacity:      capacity,
				Available:     booked < capacity,
			})
		}
	}
	return slots
}

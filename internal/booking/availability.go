package booking

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Availability is the slot picture for one calendar date: the full catalog
// plus whichever slots are already taken.
type Availability struct {
	Date     string         `json:"date"`
	Slots    []string       `json:"slots"`
	Occupied []OccupiedSlot `json:"occupied"`
}

// AvailabilityFor computes the availability for an ISO date string. The slot
// catalog is identical for every date; only the occupied list varies.
func AvailabilityFor(store *OccupiedStore, date string) (Availability, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return Availability{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	return Availability{
		Date:     date,
		Slots:    TimeSlots,
		Occupied: store.Query(date),
	}, nil
}

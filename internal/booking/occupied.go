package booking

import "sync"

// OccupiedSlot is a (date, time) pair already claimed by a prior booking.
type OccupiedSlot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// OccupiedStore is an in-memory registry of taken slots. State is lost on
// restart and duplicates are not rejected; double-booking prevention is out
// of scope.
type OccupiedStore struct {
	mu    sync.RWMutex
	slots []OccupiedSlot
}

func NewOccupiedStore() *OccupiedStore {
	return &OccupiedStore{}
}

// Add records a (date, time) pair as occupied.
func (s *OccupiedStore) Add(date, time string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots = append(s.slots, OccupiedSlot{Date: date, Time: time})
}

// Query returns the occupied slots for the given date in insertion order.
func (s *OccupiedStore) Query(date string) []OccupiedSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]OccupiedSlot, 0)
	for _, slot := range s.slots {
		if slot.Date == date {
			matches = append(matches, slot)
		}
	}
	return matches
}

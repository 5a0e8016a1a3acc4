package workorder

import (
	"fmt"
	"time"

	"github.com/example/gridboard/internal/models"
)

// RemainingState distinguishes the three outcomes of Remaining.
type RemainingState int

const (
	StateRemaining RemainingState = iota
	StateCompleted
	StateOverdue
)

// TimeRemaining is the countdown for a work order at a given instant.
// Hours and Minutes are only meaningful when State is StateRemaining.
type TimeRemaining struct {
	State   RemainingState
	Hours   int
	Minutes int
}

// Remaining computes the countdown to EstimatedEndTime at now.
// Completed orders are always StateCompleted; otherwise an end time strictly
// before now is StateOverdue. The duration is truncated to whole minutes.
func Remaining(order models.WorkOrder, now time.Time) TimeRemaining {
	if order.Status == models.WorkCompleted {
		return TimeRemaining{State: StateCompleted}
	}
	if now.After(order.EstimatedEndTime) {
		return TimeRemaining{State: StateOverdue}
	}

	diff := order.EstimatedEndTime.Sub(now)
	return TimeRemaining{
		State:   StateRemaining,
		Hours:   int(diff / time.Hour),
		Minutes: int((diff % time.Hour) / time.Minute),
	}
}

func (r TimeRemaining) String() string {
	switch r.State {
	case StateCompleted:
		return "Completed"
	case StateOverdue:
		return "Overdue"
	}
	return fmt.Sprintf("%dh %dm remaining", r.Hours, r.Minutes)
}

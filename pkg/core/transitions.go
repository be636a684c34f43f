package core

import "fmt"

// transitions lists the legal next states for each status. Served and
// Cancelled are terminal. Cancellation is reachable from any non-terminal
// state; every other move is a single forward step.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusReady, StatusCancelled},
	StatusReady:      {StatusServed, StatusCancelled},
	StatusServed:     {},
	StatusCancelled:  {},
}

// Terminal reports whether the status accepts no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == StatusServed || s == StatusCancelled
}

// Active reports whether an order in this status is still in flight.
func (s OrderStatus) Active() bool {
	return !s.Terminal()
}

// ValidTransition reports whether moving from one status to another is
// legal under the order lifecycle.
func ValidTransition(from, to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// StateTransitionError reports an order-status change that the lifecycle
// does not allow.
type StateTransitionError struct {
	OrderID int64
	From    OrderStatus
	To      OrderStatus
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("order %d: illegal status transition %q -> %q", e.OrderID, e.From, e.To)
}

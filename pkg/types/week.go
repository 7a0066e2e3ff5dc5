package types

import "time"

// Week is a named delivery/ordering period. Orders reference at most one
// week; deleting a week nulls the reference on its orders.
type Week struct {
	WeekID    int64      // Store-assigned surrogate key.
	Name      string     // Unique, non-empty free text, e.g. "Week of May 5-11".
	StartDate *time.Time // Optional.
	EndDate   *time.Time // Optional.
}

// Package items defines the list item model and a deterministic generator
// used to seed the demo and benchmark datasets.
package items

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Status represents the lifecycle state of an item.
type Status string

const (
	// StatusActive indicates an item currently in progress.
	StatusActive Status = "active"
	// StatusPending indicates an item waiting to start.
	StatusPending Status = "pending"
	// StatusCompleted indicates a finished item.
	StatusCompleted Status = "completed"
)

// statuses lists all valid statuses in generation order.
var statuses = []Status{StatusActive, StatusPending, StatusCompleted}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusPending, StatusCompleted:
		return true
	default:
		return false
	}
}

// Item is an immutable list record. Updates replace the record rather than
// mutating it in place.
type Item struct {
	// ID is the item's ordinal identifier within its dataset.
	ID int

	// Key is a stable identity for the item's rendered view, independent of
	// the item's current position in the list. Used as a cache key.
	Key ulid.ULID

	// Title is the single-line item heading.
	Title string

	// Description is the item body, possibly populated lazily.
	Description string

	// Timestamp is when the item was created.
	Timestamp time.Time

	// Status is the item's lifecycle state.
	Status Status
}

// WithDescription returns a copy of the item with the description replaced.
func (it Item) WithDescription(desc string) Item {
	it.Description = desc
	return it
}

// WithStatus returns a copy of the item with the status replaced.
func (it Item) WithStatus(s Status) Item {
	it.Status = s
	return it
}

// Generate produces n items with deterministic content for a given seed.
// Timestamps count backwards from base so item 0 is the newest.
func Generate(n int, seed int64, base time.Time) []Item {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // Demo data, not security-sensitive
	entropy := ulid.Monotonic(rng, 0)

	out := make([]Item, n)
	for i := range out {
		ts := base.Add(-time.Duration(i) * time.Minute)
		out[i] = Item{
			ID:          i,
			Key:         ulid.MustNew(ulid.Timestamp(ts), entropy),
			Title:       fmt.Sprintf("Item %d", i),
			Description: fmt.Sprintf("Generated record #%d", i),
			Timestamp:   ts,
			Status:      statuses[i%len(statuses)],
		}
	}
	return out
}

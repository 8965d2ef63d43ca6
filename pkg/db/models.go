package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrDraftNotFound is returned when no draft matches the lookup
var ErrDraftNotFound = errors.New("draft not found")

// Draft is one month's roster input as the user typed it.
// The texts are kept raw so they can be re-parsed and edited later.
type Draft struct {
	ID           string
	Name         string
	Year         int
	Month        int // zero-based, as used by the roster engine
	PerDay       int
	QuotasText   string
	LeavesText   string
	RequestsText string
	CreatedAt    time.Time
}

// NewDraft creates a draft with a fresh ID and creation time
func NewDraft(name string, year, month, perDay int, quotasText, leavesText, requestsText string) *Draft {
	return &Draft{
		ID:           uuid.New().String(),
		Name:         name,
		Year:         year,
		Month:        month,
		PerDay:       perDay,
		QuotasText:   quotasText,
		LeavesText:   leavesText,
		RequestsText: requestsText,
		CreatedAt:    time.Now().UTC(),
	}
}

// Period formats the draft's month as YYYY-MM
func (d *Draft) Period() string {
	return fmt.Sprintf("%04d-%02d", d.Year, d.Month+1)
}

package roster

import (
	"errors"

	"go.uber.org/zap"
)

// ErrInvalidInput is returned when the generation input fails validation
var ErrInvalidInput = errors.New("invalid roster input")

const (
	// DefaultMaxTrials is the number of trials run when Options.MaxTrials is not set
	DefaultMaxTrials = 100

	// UnderstaffedWarning marks a day that ended with fewer staff than required
	UnderstaffedWarning = "Understaffed"
)

// StaffQuota is the maximum number of duty days a person may work in the month
type StaffQuota struct {
	Name  string `validate:"required,notblank"`
	Quota int    `validate:"min=0"`
}

// DayConstraint ties a person to a set of days of the month.
// It is used both for leaves (must not work) and requests (wants to work).
type DayConstraint struct {
	Name string `validate:"required,notblank"`
	Days []int  `validate:"dive,min=1,max=31"`
}

// ScheduleDay is a single calendar day of the roster
type ScheduleDay struct {
	Date       string   // ISO date, YYYY-MM-DD
	DayOfMonth int      // 1..daysInMonth
	DayOfWeek  int      // 0 (Sunday) .. 6 (Saturday)
	Staff      []string // assigned names, in assignment order
	IsWeekend  bool
	Warning    string
}

// Schedule is the full month, one entry per calendar day
type Schedule []ScheduleDay

// Statistics summarises one person's allocation in the final schedule
type Statistics struct {
	Name          string
	Target        int
	Assigned      int
	WeekendShifts int
}

// Input is everything the engine needs to build a month's roster
type Input struct {
	Year int `validate:"min=1"`

	// Month is zero-based (0 = January)
	Month int `validate:"min=0,max=11"`

	// PerDay is the number of staff required on every day
	PerDay int `validate:"min=1"`

	Quotas   []StaffQuota    `validate:"required,min=1,unique=Name,dive"`
	Leaves   []DayConstraint `validate:"dive"`
	Requests []DayConstraint `validate:"dive"`
}

// Options tunes the multi-start search
type Options struct {
	// MaxTrials caps the number of trials (defaults to DefaultMaxTrials)
	MaxTrials int

	// Workers bounds how many trials run concurrently (defaults to runtime.NumCPU)
	Workers int

	// Seed makes the search reproducible. A random seed is drawn when nil.
	Seed *uint64

	// Criteria scores candidates in the slot filler (defaults to DefaultCriteria)
	Criteria []Criterion

	Logger *zap.Logger
}

// GenerationResult is the outcome of Generate
type GenerationResult struct {
	Schedule Schedule
	Stats    []Statistics

	// Logs holds the winning trial's warnings: rejected requests first, then one line per
	// understaffed day. ApplyEdits appends one line per edit, and callers may add their own
	// warnings in front.
	Logs []string

	// Success is true when every slot of every day was filled
	Success bool

	UnfilledSlots int

	// Trial is the index of the winning trial
	Trial int

	// TrialsRun is the number of trials that completed
	TrialsRun int

	// Seed is the seed the search ran with
	Seed uint64
}

package roster

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("failed to register notblank validation: %v", err))
	}
	return v
}

// ValidateInput checks the preconditions of Generate.
// Errors wrap ErrInvalidInput.
func ValidateInput(in Input) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// ValidateSchedule checks a finished schedule against the capacity rules and every criterion.
// Uses DefaultCriteria when criteria is empty. An empty slice means the schedule is valid.
func ValidateSchedule(schedule Schedule, in Input, criteria []Criterion) []ScheduleViolation {
	if len(criteria) == 0 {
		criteria = DefaultCriteria()
	}

	violations := validateCapacity(schedule, in.PerDay)

	// Run validation for each criterion
	for _, criterion := range criteria {
		violations = append(violations, criterion.ValidateSchedule(schedule, &in)...)
	}

	return violations
}

// validateCapacity checks that no day is overfilled and no name repeats within a day
func validateCapacity(schedule Schedule, perDay int) []ScheduleViolation {
	var violations []ScheduleViolation

	for _, day := range schedule {
		if len(day.Staff) > perDay {
			violations = append(violations, ScheduleViolation{
				DayOfMonth:    day.DayOfMonth,
				Date:          day.Date,
				CriterionName: "Capacity",
				Description:   fmt.Sprintf("%d staff assigned, %d required", len(day.Staff), perDay),
			})
		}

		seen := make([]string, 0, len(day.Staff))
		for _, name := range day.Staff {
			if slices.Contains(seen, name) {
				violations = append(violations, ScheduleViolation{
					DayOfMonth:    day.DayOfMonth,
					Date:          day.Date,
					CriterionName: "Capacity",
					Description:   fmt.Sprintf("%s is assigned twice", name),
				})
				continue
			}
			seen = append(seen, name)
		}
	}

	return violations
}

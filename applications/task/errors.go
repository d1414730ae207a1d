package task

import (
	"errors"
	"strings"
)

var ErrTaskNotFound = errors.New("task not found")

// ValidationError reports which required fields were empty after trimming.
// Either flag may be set independently.
type ValidationError struct {
	TitleMissing       bool
	DescriptionMissing bool
}

func (e *ValidationError) Error() string {
	var missing []string
	if e.TitleMissing {
		missing = append(missing, "title")
	}
	if e.DescriptionMissing {
		missing = append(missing, "description")
	}
	return "required field(s) missing: " + strings.Join(missing, ", ")
}

// validateFields trims title and description and reports which are empty.
// The due date is stored as given and never validated.
func validateFields(title, description string) (string, string, *ValidationError) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" || description == "" {
		return title, description, &ValidationError{
			TitleMissing:       title == "",
			DescriptionMissing: description == "",
		}
	}
	return title, description, nil
}

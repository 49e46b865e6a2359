package task

import (
	"errors"
	"fmt"

	"github.com/amonks/butler/internal/validation"
)

var (
	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrEmptyID is returned when a task has no ID.
	ErrEmptyID = errors.New("task id cannot be empty")

	// ErrInvalidPriority is returned when an unknown priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidAttachmentType is returned when an attachment has an unknown type.
	ErrInvalidAttachmentType = errors.New("invalid attachment type")

	// ErrTaskNotFound is returned when a task with the given ID doesn't exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrDuplicateID is returned when adding a task whose ID is already used.
	ErrDuplicateID = errors.New("task id already exists")
)

// ValidateTitle checks if the title is valid.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ValidatePriority checks if the priority is valid.
func ValidatePriority(priority Priority) error {
	if !priority.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidPriority, priority, ValidPriorities())
	}
	return nil
}

// ValidateTask checks a task and its attachments.
func ValidateTask(t *Task) error {
	if t.ID == "" {
		return ErrEmptyID
	}
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if err := ValidatePriority(t.Priority); err != nil {
		return err
	}
	for _, attachment := range t.Attachments {
		if !attachment.Type.IsValid() {
			return validation.FormatInvalidValueError(ErrInvalidAttachmentType, attachment.Type, ValidAttachmentTypes())
		}
	}
	return nil
}

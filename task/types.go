// Package task implements the butler task list.
//
// Tasks live in memory for the lifetime of the session. A task may carry
// follow-up tasks, which are stored under their parent rather than at the
// top level.
//
// The public API mirrors what the task screen and the command interpreter
// need:
//   - Add, Update, Delete, ToggleCompletion for the task lifecycle
//   - List, Show, Group for querying
package task

// Priority is the importance of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"

	// PriorityNone means no priority was given.
	PriorityNone Priority = ""
)

// ValidPriorities returns all non-empty priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid returns true if the priority is a known value or unset.
func (p Priority) IsValid() bool {
	if p == PriorityNone {
		return true
	}
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// AttachmentType is the kind of media attached to a task.
type AttachmentType string

const (
	AttachmentImage AttachmentType = "image"
	AttachmentVideo AttachmentType = "video"
	AttachmentLink  AttachmentType = "link"
)

// ValidAttachmentTypes returns all valid attachment types.
func ValidAttachmentTypes() []AttachmentType {
	return []AttachmentType{AttachmentImage, AttachmentVideo, AttachmentLink}
}

// IsValid returns true if the attachment type is a known value.
func (t AttachmentType) IsValid() bool {
	for _, valid := range ValidAttachmentTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// Relative due dates understood by the task list.
const (
	DueToday    = "Today"
	DueTomorrow = "Tomorrow"
)

// MaxTitleLength is the maximum allowed length for a task title.
const MaxTitleLength = 500

package task

// Task is a single item on the task list.
type Task struct {
	// ID is an opaque unique identifier.
	ID string `json:"id"`

	// Title is the short summary of the task (max 500 chars).
	Title string `json:"title"`

	// Description provides additional context about the task.
	Description string `json:"description,omitempty"`

	Completed bool `json:"completed"`

	// DueDate is a display date such as "Today", "Tomorrow" or "Next week".
	DueDate string `json:"due_date,omitempty"`

	// DueTime is a display time such as "5:00 pm".
	DueTime string `json:"due_time,omitempty"`

	Priority Priority `json:"priority,omitempty"`

	// IsToday is derived from DueDate by the store.
	IsToday bool `json:"is_today"`

	// ParentTaskID names the task this one follows up on.
	ParentTaskID string `json:"parent_task_id,omitempty"`

	FollowUps   []Task       `json:"follow_ups,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment is media or a link attached to a task.
type Attachment struct {
	ID        string         `json:"id"`
	Type      AttachmentType `json:"type"`
	URL       string         `json:"url"`
	Title     string         `json:"title,omitempty"`
	Thumbnail string         `json:"thumbnail,omitempty"`
}

// clone returns a deep copy so callers never share follow-up slices with the store.
func (t Task) clone() Task {
	if t.FollowUps != nil {
		followUps := make([]Task, len(t.FollowUps))
		for i, followUp := range t.FollowUps {
			followUps[i] = followUp.clone()
		}
		t.FollowUps = followUps
	}
	if t.Attachments != nil {
		t.Attachments = append([]Attachment(nil), t.Attachments...)
	}
	return t
}

package task

// Groups buckets top-level tasks the way the task screen shows them.
type Groups struct {
	Today     []Task
	Tomorrow  []Task
	Upcoming  []Task
	Completed []Task
	NoDate    []Task
}

// Group buckets tasks by completion and due date. Follow-ups (tasks with a
// ParentTaskID) are skipped; they are shown under their parent.
func Group(tasks []Task) Groups {
	var groups Groups
	for _, t := range tasks {
		if t.ParentTaskID != "" {
			continue
		}
		switch {
		case t.Completed:
			groups.Completed = append(groups.Completed, t)
		case t.IsToday:
			groups.Today = append(groups.Today, t)
		case t.DueDate == DueTomorrow:
			groups.Tomorrow = append(groups.Tomorrow, t)
		case t.DueDate != "":
			groups.Upcoming = append(groups.Upcoming, t)
		default:
			groups.NoDate = append(groups.NoDate, t)
		}
	}
	return groups
}

// WithFollowUps returns the top-level tasks that have at least one follow-up.
func WithFollowUps(tasks []Task) []Task {
	var out []Task
	for _, t := range tasks {
		if t.ParentTaskID == "" && len(t.FollowUps) > 0 {
			out = append(out, t)
		}
	}
	return out
}

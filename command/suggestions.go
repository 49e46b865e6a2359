package command

// SuggestionGroup is a titled set of example commands.
type SuggestionGroup struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Suggestions []string `json:"suggestions"`
}

// Suggestions returns the example commands offered to new users, grouped
// by module. Only task and journal creation are dispatched today; the rest
// show where the interpreter is headed.
func Suggestions() []SuggestionGroup {
	return []SuggestionGroup{
		{
			ID:    "tasks",
			Title: "Tasks",
			Suggestions: []string{
				"Add task: Buy groceries tomorrow at 5pm",
				"New task call mom today at 7pm high priority",
				"Show all high priority tasks",
			},
		},
		{
			ID:    "journal",
			Title: "Journal",
			Suggestions: []string{
				"New journal entry: Today I felt productive",
				"Add journal note walked by the river mood calm",
				"Show my journal entries from last week",
			},
		},
		{
			ID:    "fitness",
			Title: "Fitness",
			Suggestions: []string{
				"Log workout: 30 minutes of running",
				"Record weight: 165 pounds",
				"Track meal: salmon salad for lunch",
			},
		},
		{
			ID:    "finance",
			Title: "Finance",
			Suggestions: []string{
				"Record expense: $34.50 for lunch",
				"Set budget: $200 for dining out this month",
				"Show my spending from last week",
			},
		},
	}
}

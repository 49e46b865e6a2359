package command

import "testing"

func TestSuggestionsTaskAndJournalExamplesDispatch(t *testing.T) {
	for _, group := range Suggestions() {
		if group.ID == "" || group.Title == "" || len(group.Suggestions) == 0 {
			t.Fatalf("incomplete suggestion group %+v", group)
		}
		if group.ID != "tasks" && group.ID != "journal" {
			continue
		}
		// The first two examples in each supported group must be accepted end to end.
		for _, text := range group.Suggestions[:2] {
			switch Classify(text).Kind {
			case KindTaskCreation:
				if _, ok := ExtractTaskFields(text); !ok {
					t.Errorf("suggestion %q has no title", text)
				}
			case KindJournalCreation:
				if _, ok := ExtractJournalFields(text); !ok {
					t.Errorf("suggestion %q has no content", text)
				}
			default:
				t.Errorf("suggestion %q is not recognized", text)
			}
		}
	}
}

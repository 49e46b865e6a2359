package command

import "testing"

func TestExtractTitle(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "stops at tomorrow", input: "add task Buy milk tomorrow at 5pm high priority", want: "Buy milk", ok: true},
		{name: "case insensitive trigger", input: "Create Task Finish report", want: "Finish report", ok: true},
		{name: "trims whitespace", input: "new task   Call dentist   ", want: "Call dentist", ok: true},
		{name: "strips separator", input: "Add task: Buy groceries tomorrow at 5pm", want: "Buy groceries", ok: true},
		{name: "stop words are whole words", input: "add task buy onions", want: "buy onions", ok: true},
		{name: "stops at due", input: "add task write report due friday", want: "write report", ok: true},
		{name: "stops at on", input: "add task plan trip on monday", want: "plan trip", ok: true},
		{name: "stops at priority", input: "please add task water plants priority low", want: "water plants", ok: true},
		{name: "stops at today", input: "create task Buy milk today", want: "Buy milk", ok: true},
		{name: "empty before stop word", input: "create task tomorrow at 5pm", ok: false},
		{name: "trigger only", input: "add task", ok: false},
		{name: "plural is not a trigger", input: "add tasks list", ok: false},
		{name: "no trigger", input: "show all tasks", ok: false},
		{name: "accented word containing on", input: "add task Call Léon tomorrow", want: "Call Léon", ok: true},
		{name: "accented word ending in at", input: "add task Email Zoéat today", want: "Email Zoéat", ok: true},
		{name: "stop word followed by accent", input: "add task visit Atéliers Dupont", want: "visit Atéliers Dupont", ok: true},
		{name: "accented trigger suffix", input: "add taské dentist", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractTitle(tc.input)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("expected %q/%t, got %q/%t", tc.want, tc.ok, got, ok)
			}
		})
	}
}

func TestExtractDueDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "tomorrow", input: "add task X tomorrow", want: DueTomorrow, ok: true},
		{name: "today", input: "add task X today", want: DueToday, ok: true},
		{name: "uppercase", input: "add task X TODAY", want: DueToday, ok: true},
		{name: "tomorrow wins", input: "create task X tomorrow today", want: DueTomorrow, ok: true},
		{name: "tomorrow wins regardless of order", input: "create task X today or tomorrow", want: DueTomorrow, ok: true},
		{name: "absent", input: "add task X", ok: false},
		{name: "not a whole word", input: "add task read todays paper", ok: false},
		{name: "accented prefix", input: "add task call Renétoday", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractDueDate(tc.input)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("expected %q/%t, got %q/%t", tc.want, tc.ok, got, ok)
			}
		})
	}
}

func TestExtractDueTime(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "hour only", input: "at 5", want: "5:00 pm", ok: true},
		{name: "hour defaults to pm", input: "add task X at 9", want: "9:00 pm", ok: true},
		{name: "minutes and am", input: "add task X at 9:30am", want: "9:30 am", ok: true},
		{name: "suffix without minutes", input: "add task X tomorrow at 5pm", want: "5:00 pm", ok: true},
		{name: "spaced uppercase suffix", input: "add task X at 7 PM", want: "7:00 pm", ok: true},
		{name: "two digit hour", input: "add task X at 10:15 pm", want: "10:15 pm", ok: true},
		{name: "uppercase keyword", input: "ADD TASK X AT 6AM", want: "6:00 am", ok: true},
		{name: "skips non-time at", input: "add task meet Bob at the cafe at 5pm", want: "5:00 pm", ok: true},
		{name: "no number", input: "add task meet at the cafe", ok: false},
		{name: "three digits", input: "add task X at 123", want: "12:00 pm", ok: true},
		{name: "trailing letters", input: "add task X at 5pmish", want: "5:00 pm", ok: true},
		{name: "at inside accented word", input: "add task email Zoéat 5", ok: false},
		{name: "absent", input: "add task X", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractDueTime(tc.input)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("expected %q/%t, got %q/%t", tc.want, tc.ok, got, ok)
			}
		})
	}
}

func TestExtractPriority(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "high", input: "add task X high priority", want: PriorityHigh, ok: true},
		{name: "medium", input: "add task X medium priority", want: PriorityMedium, ok: true},
		{name: "low", input: "add task X low priority", want: PriorityLow, ok: true},
		{name: "uppercase", input: "add task X HIGH PRIORITY", want: PriorityHigh, ok: true},
		{name: "high checked first", input: "add task X low priority high priority", want: PriorityHigh, ok: true},
		{name: "medium before low", input: "add task X low priority medium priority", want: PriorityMedium, ok: true},
		{name: "reversed phrase", input: "add task X priority high", ok: false},
		{name: "absent", input: "add task X", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractPriority(tc.input)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("expected %q/%t, got %q/%t", tc.want, tc.ok, got, ok)
			}
		})
	}
}

func TestExtractJournalContent(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "stops at mood", input: "new journal entry Today I felt great mood happy", want: "Today I felt great", ok: true},
		{name: "stops at feeling", input: "add journal note lunch with Sam feeling good", want: "lunch with Sam", ok: true},
		{name: "stops at tags", input: "create journal entry shipped the release tags work", want: "shipped the release", ok: true},
		{name: "runs to end", input: "new journal entry: Today I felt productive", want: "Today I felt productive", ok: true},
		{name: "case insensitive", input: "New Journal Note Rainy day", want: "Rainy day", ok: true},
		{name: "empty", input: "new journal entry", ok: false},
		{name: "empty before stop", input: "new journal entry mood happy", ok: false},
		{name: "no entry or note", input: "create journal about today", ok: false},
		{name: "stop word followed by accent", input: "new journal entry tried Tagès restaurant", want: "tried Tagès restaurant", ok: true},
		{name: "accented word ending in mood", input: "new journal entry dinner with Chloémood", want: "dinner with Chloémood", ok: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractJournalContent(tc.input)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("expected %q/%t, got %q/%t", tc.want, tc.ok, got, ok)
			}
		})
	}
}

func TestExtractTaskFields(t *testing.T) {
	for _, title := range []string{"Buy milk", "Renew passport", "email the landlord"} {
		text := "add task " + title + " tomorrow at 5pm high priority"
		fields, ok := ExtractTaskFields(text)
		if !ok {
			t.Fatalf("expected fields for %q", text)
		}
		want := TaskFields{Title: title, DueDate: DueTomorrow, DueTime: "5:00 pm", Priority: PriorityHigh}
		if fields != want {
			t.Fatalf("expected %+v, got %+v", want, fields)
		}
	}
}

func TestExtractTaskFields_MissingTitle(t *testing.T) {
	fields, ok := ExtractTaskFields("create task tomorrow at 5pm")
	if ok {
		t.Fatalf("expected missing title, got %+v", fields)
	}
}

func TestExtractTaskFields_OptionalFieldsAbsent(t *testing.T) {
	fields, ok := ExtractTaskFields("new task Water plants")
	if !ok {
		t.Fatal("expected fields")
	}
	if fields != (TaskFields{Title: "Water plants"}) {
		t.Fatalf("expected only a title, got %+v", fields)
	}
}

func TestExtractJournalFields(t *testing.T) {
	fields, ok := ExtractJournalFields("new journal entry Today I felt great mood happy")
	if !ok || fields.Content != "Today I felt great" {
		t.Fatalf("expected content, got %+v/%t", fields, ok)
	}

	if _, ok := ExtractJournalFields("new journal"); ok {
		t.Fatal("expected missing content")
	}
}

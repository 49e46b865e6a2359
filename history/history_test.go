package history

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/amonks/butler/command"
)

var testNow = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newCommand(id string, category command.Category) command.Command {
	return command.New(id, "add "+string(category)+" "+id, command.IntentAdd, category, testNow)
}

func ids(commands []command.Command) []string {
	out := make([]string, 0, len(commands))
	for _, cmd := range commands {
		out = append(out, cmd.ID)
	}
	return out
}

func TestLog_AppendPrepends(t *testing.T) {
	log := New()
	log.Append(newCommand("a", command.CategoryTask))
	log.Append(newCommand("b", command.CategoryJournal))
	log.Append(newCommand("c", command.CategoryTask))

	got := fmt.Sprint(ids(log.List()))
	if got != "[c b a]" {
		t.Fatalf("expected newest first [c b a], got %s", got)
	}
	if log.Len() != 3 {
		t.Fatalf("expected length 3, got %d", log.Len())
	}
}

func TestLog_ZeroValueIsUsable(t *testing.T) {
	var log Log
	if got := log.List(); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
	log.Append(newCommand("a", command.CategoryTask))
	if log.Len() != 1 {
		t.Fatalf("expected length 1, got %d", log.Len())
	}
}

func TestLog_AppendKeepsDuplicates(t *testing.T) {
	log := New()
	first := command.New("a", "add task X", command.IntentAdd, command.CategoryTask, testNow)
	second := command.New("b", "add task X", command.IntentAdd, command.CategoryTask, testNow.Add(time.Second))
	log.Append(first)
	log.Append(second)

	list := log.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 records, got %d", len(list))
	}
	if list[0].ID == list[1].ID {
		t.Fatalf("expected distinct IDs, got %q twice", list[0].ID)
	}
}

func TestLog_Recent(t *testing.T) {
	log := New()
	for _, id := range []string{"a", "b", "c", "d"} {
		log.Append(newCommand(id, command.CategoryTask))
	}

	cases := []struct {
		n    int
		want string
	}{
		{n: -1, want: "[]"},
		{n: 0, want: "[]"},
		{n: 1, want: "[d]"},
		{n: 3, want: "[d c b]"},
		{n: 10, want: "[d c b a]"},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprint(tc.n), func(t *testing.T) {
			got := fmt.Sprint(ids(log.Recent(tc.n)))
			if got != tc.want {
				t.Fatalf("Recent(%d) = %s, want %s", tc.n, got, tc.want)
			}
		})
	}
}

func TestLog_RecentIsIdempotent(t *testing.T) {
	log := New()
	log.Append(newCommand("a", command.CategoryTask))
	log.Append(newCommand("b", command.CategoryJournal))

	first := log.Recent(DefaultRecent)
	second := log.Recent(DefaultRecent)
	if fmt.Sprint(first) != fmt.Sprint(second) {
		t.Fatalf("expected identical results, got %v and %v", first, second)
	}
}

func TestLog_ReadsAreSnapshots(t *testing.T) {
	log := New()
	log.Append(newCommand("a", command.CategoryTask))

	list := log.List()
	list[0].Text = "mutated"
	log.Append(newCommand("b", command.CategoryTask))

	if got := log.List()[1].Text; got == "mutated" {
		t.Fatal("expected caller mutation not to leak into the log")
	}
	if len(list) != 1 {
		t.Fatalf("expected snapshot to keep its length, got %d", len(list))
	}
}

func TestLog_ByCategory(t *testing.T) {
	log := New()
	log.Append(newCommand("a", command.CategoryTask))
	log.Append(newCommand("b", command.CategoryJournal))
	log.Append(newCommand("c", command.CategoryTask))

	if got := fmt.Sprint(ids(log.ByCategory(command.CategoryTask))); got != "[c a]" {
		t.Fatalf("expected [c a], got %s", got)
	}
	if got := fmt.Sprint(ids(log.ByCategory(command.CategoryJournal))); got != "[b]" {
		t.Fatalf("expected [b], got %s", got)
	}
	if got := log.ByCategory(command.CategoryTravel); len(got) != 0 {
		t.Fatalf("expected no travel commands, got %v", got)
	}
}

func TestLog_Clear(t *testing.T) {
	log := New()
	log.Append(newCommand("a", command.CategoryTask))
	log.Clear()

	if log.Len() != 0 {
		t.Fatalf("expected empty log, got %d", log.Len())
	}
	log.Append(newCommand("b", command.CategoryTask))
	if got := fmt.Sprint(ids(log.List())); got != "[b]" {
		t.Fatalf("expected [b] after clear, got %s", got)
	}
}

func TestLog_ConcurrentAppendAndRead(t *testing.T) {
	log := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				log.Append(newCommand(fmt.Sprintf("%d-%d", i, j), command.CategoryTask))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				for _, cmd := range log.List() {
					_ = cmd.ID
				}
				_ = log.Recent(DefaultRecent)
			}
		}()
	}
	wg.Wait()

	if log.Len() != 400 {
		t.Fatalf("expected 400 records, got %d", log.Len())
	}
}

package ids

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	id := Generate("task-123", 8)

	if len(id) != 8 {
		t.Fatalf("expected ID length 8, got %d: %q", len(id), id)
	}

	for _, c := range id {
		if !((c >= 'a' && c <= 'z') || (c >= '2' && c <= '7')) {
			t.Errorf("ID contains invalid character %q: %q", c, id)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	id1 := Generate("task-123", 10)
	id2 := Generate("task-123", 10)

	if id1 != id2 {
		t.Errorf("same inputs should produce same ID: got %q and %q", id1, id2)
	}
}

func TestGenerate_NonPositiveLength(t *testing.T) {
	if got := Generate("task-123", 0); got != "" {
		t.Fatalf("expected empty ID, got %q", got)
	}
}

func TestGenerate_ClampsLength(t *testing.T) {
	id := Generate("task-123", 500)
	if len(id) != 52 {
		t.Fatalf("expected full 52-char encoding, got %d", len(id))
	}
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		if len(id) != DefaultLength {
			t.Fatalf("expected length %d, got %q", DefaultLength, id)
		}
		if seen[id] {
			t.Fatalf("duplicate ID %q after %d draws", id, i)
		}
		seen[id] = true
	}
}

func TestNewWithPrefix(t *testing.T) {
	id := NewWithPrefix("task")
	if !strings.HasPrefix(id, "task-") {
		t.Fatalf("expected task- prefix, got %q", id)
	}
	if len(id) != len("task-")+DefaultLength {
		t.Fatalf("unexpected length for %q", id)
	}

	if got := NewWithPrefix(""); strings.Contains(got, "-") {
		t.Fatalf("expected bare ID without prefix, got %q", got)
	}
}

package command

import (
	"testing"
	"time"
)

func TestIntent_IsValid(t *testing.T) {
	tests := []struct {
		intent Intent
		valid  bool
	}{
		{IntentAdd, true},
		{IntentView, true},
		{IntentUpdate, true},
		{IntentDelete, true},
		{Intent("archive"), false},
		{Intent(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.intent), func(t *testing.T) {
			if got := tt.intent.IsValid(); got != tt.valid {
				t.Errorf("Intent(%q).IsValid() = %v, want %v", tt.intent, got, tt.valid)
			}
		})
	}
}

func TestCategory_IsValid(t *testing.T) {
	for _, category := range ValidCategories() {
		if !category.IsValid() {
			t.Errorf("Category(%q).IsValid() = false, want true", category)
		}
	}
	for _, category := range []Category{"", "habit", "TASK"} {
		if category.IsValid() {
			t.Errorf("Category(%q).IsValid() = true, want false", category)
		}
	}
	if len(ValidCategories()) != 7 {
		t.Fatalf("expected 7 categories, got %d", len(ValidCategories()))
	}
}

func TestNew(t *testing.T) {
	now := time.Date(2025, 3, 2, 9, 12, 0, 0, time.UTC)
	cmd := New("abc", "add task X", IntentAdd, CategoryTask, now)

	want := Command{
		ID:        "abc",
		Text:      "add task X",
		Intent:    IntentAdd,
		Category:  CategoryTask,
		Timestamp: now,
		TimeAgo:   "Just now",
	}
	if cmd != want {
		t.Fatalf("expected %+v, got %+v", want, cmd)
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, 3, 2, 9, 12, 0, 0, time.UTC)
	cmd := New("abc", "add task X", IntentAdd, CategoryTask, now.Add(-2*time.Hour))

	if got := TimeAgo(cmd, now); got != "2 hours ago" {
		t.Fatalf("expected 2 hours ago, got %q", got)
	}
	if cmd.TimeAgo != "Just now" {
		t.Fatalf("expected stored TimeAgo unchanged, got %q", cmd.TimeAgo)
	}
}

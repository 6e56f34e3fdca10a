package format

import (
	"testing"
	"time"
)

func TestCategoryClassKnown(t *testing.T) {
	known := []string{
		"beaches", "waterfalls", "caves", "diving", "attractions",
		"food-drink", "accommodation", "activities", "travel-tips", "culture",
	}
	for _, category := range known {
		got := CategoryClass(category)
		if got == defaultClass {
			t.Errorf("CategoryClass(%q) fell back to default", category)
		}
	}
}

func TestCategoryClassFallback(t *testing.T) {
	for _, input := range []string{"", "unknown", "BEACHES"} {
		if got := CategoryClass(input); got != defaultClass {
			t.Errorf("CategoryClass(%q) = %q, want fallback %q", input, got, defaultClass)
		}
	}
}

func TestDifficultyClass(t *testing.T) {
	for _, difficulty := range []string{"easy", "moderate", "challenging"} {
		if got := DifficultyClass(difficulty); got == defaultClass {
			t.Errorf("DifficultyClass(%q) fell back to default", difficulty)
		}
	}
	if got := DifficultyClass("extreme"); got != defaultClass {
		t.Errorf("DifficultyClass(%q) = %q, want fallback %q", "extreme", got, defaultClass)
	}
}

func TestSeason(t *testing.T) {
	tests := []struct {
		month    time.Month
		expected string
	}{
		{time.January, "dry"},
		{time.February, "dry"},
		{time.March, "dry"},
		{time.April, "dry"},
		{time.May, "dry"},
		{time.June, "wet"},
		{time.July, "wet"},
		{time.August, "wet"},
		{time.September, "wet"},
		{time.October, "wet"},
		{time.November, "dry"},
		{time.December, "dry"},
	}
	for _, tt := range tests {
		if got := Season(tt.month); got != tt.expected {
			t.Errorf("Season(%v) = %q, want %q", tt.month, got, tt.expected)
		}
	}
}

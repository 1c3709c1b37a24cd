package lexicon

import "testing"

func TestCategorizeExactMatch(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"milk", "Dairy"},
		{"bananas", "Fruits"},
		{"spinach", "Vegetables"},
		{"chicken", "Meat"},
		{"bread", "Bakery"},
		{"juice", "Beverages"},
		{"chips", "Snacks"},
		{"rice", "Grains"},
		{"mayonnaise", "Condiments"},
	}
	for _, tt := range tests {
		got := Categorize(tt.input)
		if got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCategorizeKeywordMatch(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"whole wheat bread", "Bakery"},
		{"greek yogurt cups", "Dairy"},
		{"sparkling water with lemon", "Beverages"},
		{"dark chocolate bar", "Snacks"},
		{"brown rice", "Grains"},
		{"extra virgin olive oil", "Condiments"},
		{"lean chicken breast", "Meat"},
		{"fresh fruit basket", "Fruits"},
	}
	for _, tt := range tests {
		got := Categorize(tt.input)
		if got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCategorizeCaseInsensitive(t *testing.T) {
	if got := Categorize("MILK"); got != "Dairy" {
		t.Errorf("Categorize(%q) = %q, want %q", "MILK", got, "Dairy")
	}
	if got := Categorize("  Whole Wheat Bread  "); got != "Bakery" {
		t.Errorf("Categorize with whitespace = %q, want %q", got, "Bakery")
	}
}

func TestCategorizeFallback(t *testing.T) {
	tests := []string{"", "widget", "mystery box"}
	for _, input := range tests {
		if got := Categorize(input); got != "Other" {
			t.Errorf("Categorize(%q) = %q, want %q", input, got, "Other")
		}
	}
}

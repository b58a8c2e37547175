package daxie

import "testing"

func TestFormatGrouped(t *testing.T) {
	tests := []struct {
		major string
		want  string
	}{
		{"", ""},
		{"0.05", "0.05"},
		{"123", "123"},
		{"999.99", "999.99"},
		{"1234", "1,234"},
		{"1234567.89", "1,234,567.89"},
		{"-1234567.89", "-1,234,567.89"},
		{"$1234.5", "$1,234.5"},
		{"-$1234", "-$1,234"},
		{"123456789012.34", "123,456,789,012.34"},
		{"1,234,567.89", "1,234,567.89"},
		{"12,34567.89", "1,234,567.89"},
		{".5", ".5"},
		{"abc", "abc"},
	}
	for _, tt := range tests {
		got := FormatGrouped(tt.major)
		if got != tt.want {
			t.Errorf("FormatGrouped(%q) = %q, want %q", tt.major, got, tt.want)
		}
		if again := FormatGrouped(got); again != got {
			t.Errorf("FormatGrouped(%q) = %q, want %q", got, again, got)
		}
	}
}

func TestStripSeparators(t *testing.T) {
	tests := []struct {
		s, want string
	}{
		{"1,234.5", "1234.5"},
		{"1234.5", "1234.5"},
		{",,", ""},
	}
	for _, tt := range tests {
		got := stripSeparators(tt.s)
		if got != tt.want {
			t.Errorf("stripSeparators(%q) = %q, want %q", tt.s, got, tt.want)
		}
		if again := stripSeparators(got); again != got {
			t.Errorf("stripSeparators(%q) = %q, want %q", got, again, got)
		}
	}
}

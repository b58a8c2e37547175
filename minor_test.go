package daxie

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestMinorToMajor(t *testing.T) {
	tests := []struct {
		minor int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{-5, "-0.05"},
		{50, "0.50"},
		{99, "0.99"},
		{100, "1.00"},
		{-100, "-1.00"},
		{123456, "1,234.56"},
		{100000, "1,000.00"},
		{99999, "999.99"},
		{-123456789, "-1,234,567.89"},
		{99_999_999_999_999, "999,999,999,999.99"},
		{math.MaxInt64, "92,233,720,368,547,758.07"},
		{math.MinInt64, "-92,233,720,368,547,758.08"},
	}
	for _, tt := range tests {
		got := MinorToMajor(tt.minor)
		if got != tt.want {
			t.Errorf("MinorToMajor(%v) = %q, want %q", tt.minor, got, tt.want)
		}
	}
}

func TestMajorToMinor(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			major string
			want  int64
		}{
			{"1.00", 100},
			{"0.05", 5},
			{"-0.05", -5},
			{"$1,234.5", 123450},
			{"¥1,234.56", 123456},
			{"￥１２", 1200},
			{"5", 500},
			{"5.", 500},
			{".5", 50},
			{"007.5", 750},
			{"1.239", 123},
			{"-1.239", -123},
			{"0", 0},
			{"92,233,720,368,547,758.07", math.MaxInt64},
			{"-92,233,720,368,547,758.08", math.MinInt64},
		}
		for _, tt := range tests {
			got, err := MajorToMinor(tt.major)
			if err != nil {
				t.Errorf("MajorToMinor(%q) failed: %v", tt.major, err)
				continue
			}
			if got != tt.want {
				t.Errorf("MajorToMinor(%q) = %v, want %v", tt.major, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			major string
			want  error
		}{
			"empty":       {"", ErrInvalidFormat},
			"symbol only": {"$", ErrInvalidFormat},
			"point only":  {".", ErrInvalidFormat},
			"letters":     {"12a", ErrInvalidFormat},
			"two points":  {"1.2.3", ErrInvalidFormat},
			"overflow 1":  {"92233720368547758.08", ErrUnsupportedMagnitude},
			"overflow 2":  {"-92233720368547758.09", ErrUnsupportedMagnitude},
			"overflow 3":  {"100000000000000000000", ErrUnsupportedMagnitude},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := MajorToMinor(tt.major)
				if !errors.Is(err, tt.want) {
					t.Errorf("MajorToMinor(%q) = %v, want %v", tt.major, err, tt.want)
				}
			})
		}
	})
}

func TestMinorToMajor_RoundTrip(t *testing.T) {
	tests := []int64{
		1, -1, 9, 10, 99, 100, 101, 999, 1000, 123456, -123456,
		99_999_999_999_999, -99_999_999_999_999,
		math.MaxInt64, math.MinInt64,
	}
	r := rand.New(rand.NewSource(42))
	for range 1000 {
		m := r.Int63n(100_000_000_000_000)
		if r.Intn(2) == 0 {
			m = -m
		}
		tests = append(tests, m)
	}
	for _, m := range tests {
		s := MinorToMajor(m)
		got, err := MajorToMinor(s)
		if err != nil {
			t.Errorf("MajorToMinor(%q) failed: %v", s, err)
			continue
		}
		if got != m {
			t.Errorf("MajorToMinor(MinorToMajor(%v)) = %v", m, got)
		}
	}
}

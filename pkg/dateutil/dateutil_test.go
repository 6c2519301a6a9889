package dateutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"Saturday is weekend", time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC), true},
		{"Sunday is weekend", time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), true},
		{"Monday is not weekend", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), false},
		{"Friday is not weekend", time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWeekend(tt.input); got != tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), got, tt.want)
			}
			if got := IsWeekday(tt.input); got == tt.want {
				t.Errorf("IsWeekday(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), got, !tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same day", time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC), time.Date(2024, 6, 10, 23, 0, 0, 0, time.UTC), 0},
		{"two days ahead", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), 2},
		{"across year end", time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), 5},
		{"backwards", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), -161},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2024, true},
		{2025, false},
		{1900, false},
		{2000, true},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestParseDayMonthYear(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"two digit day and month", "12.06.1990", time.Date(1990, 6, 12, 0, 0, 0, 0, time.Local), false},
		{"single digit day and month", "2.1.1985", time.Date(1985, 1, 2, 0, 0, 0, 0, time.Local), false},
		{"leap day in leap year", "29.02.2000", time.Date(2000, 2, 29, 0, 0, 0, 0, time.Local), false},
		{"leap day in common year", "29.02.2021", time.Time{}, true},
		{"February 31", "31.02.2020", time.Time{}, true},
		{"month 13", "01.13.2020", time.Time{}, true},
		{"ISO format", "2020-01-01", time.Time{}, true},
		{"slashes", "01/01/2020", time.Time{}, true},
		{"two digit year", "01.01.20", time.Time{}, true},
		{"trailing text", "01.01.2020x", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDayMonthYear(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDayMonthYear(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDayMonthYear(%q) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"ISO format YYYY-MM-DD", "2025-01-15", time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local), false},
		{"DD.MM.YYYY", "15.01.2025", time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local), false},
		{"garbage", "yesterday", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDate(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestFormatISODate(t *testing.T) {
	input := time.Date(2025, 1, 2, 10, 30, 45, 0, time.UTC)
	if got := FormatISODate(input); got != "2025-01-02" {
		t.Errorf("FormatISODate(%v) = %v, want %v", input, got, "2025-01-02")
	}
}

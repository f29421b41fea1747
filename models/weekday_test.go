package models

import "testing"

func TestParseWeekdayNormalizesInput(t *testing.T) {
	cases := map[string]Weekday{
		"monday":     Monday,
		"MONDAY":     Monday,
		" Tuesday ":  Tuesday,
		"sunday":     Sunday,
		"\tSaturday": Saturday,
	}
	for input, want := range cases {
		got, err := ParseWeekday(input)
		if err != nil {
			t.Fatalf("ParseWeekday(%q) returned error: %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseWeekday(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestParseWeekdayRejectsUnknownNames(t *testing.T) {
	for _, input := range []string{"", "mon", "funday", "lundi"} {
		if _, err := ParseWeekday(input); err == nil {
			t.Fatalf("ParseWeekday(%q) should fail", input)
		}
	}
}

func TestWeekdayString(t *testing.T) {
	if Monday.String() != "monday" {
		t.Fatalf("expected monday, got %s", Monday.String())
	}
	if Weekday(9).String() == "monday" {
		t.Fatalf("out-of-range weekday must not map to a real day")
	}
}

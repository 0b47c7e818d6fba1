package util

import "testing"

func TestMonthName(t *testing.T) {
	cases := []struct {
		month int
		want  string
	}{
		{1, "January"},
		{6, "June"},
		{12, "December"},
		{0, "Unknown"},
		{13, "Unknown"},
		{-3, "Unknown"},
	}

	for _, tc := range cases {
		if got := MonthName(tc.month); got != tc.want {
			t.Errorf("MonthName(%d) = %q, want %q", tc.month, got, tc.want)
		}
	}
}

package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1266.714, "$1,266.71"},
		{1266.715, "$1,266.72"},
		{250000, "$250,000.00"},
		{-42.5, "-$42.50"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatMoneyWhole(t *testing.T) {
	if got := FormatMoneyWhole(206016.4); got != "$206,016" {
		t.Errorf("FormatMoneyWhole = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(34.56); got != "34.6%" {
		t.Errorf("FormatPercent = %q", got)
	}
}

func TestFormatMonth(t *testing.T) {
	if got := FormatMonth(141); got != "month 141 (year 11.8)" {
		t.Errorf("FormatMonth = %q", got)
	}
}

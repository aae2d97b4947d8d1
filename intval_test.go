// intval_test.go
package core

import "testing"

func Test_IntVal_RangeBoundaries(t *testing.T) {
	cases := []struct {
		v    int64
		want bool
	}{
		{0, true},
		{2147483647, true},
		{-2147483648, true},
		{2147483648, false},
		{-2147483649, false},
	}
	for _, tc := range cases {
		if got := IsValidInRange(tc.v); got != tc.want {
			t.Fatalf("IsValidInRange(%d): want %v, got %v", tc.v, tc.want, got)
		}
	}
}

func Test_IntVal_WellFormed(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{"0", true},
		{"42", true},
		{"-42", true},
		{"+7", true},
		{"2147483647", true},
		{"-2147483648", true},
		{"2147483648", false},
		{"-2147483649", false},
		{"99999999999999999999", false},
		{"", false},
		{"-", false},
		{"+", false},
		{"12a", false},
		{"a12", false},
		{"1.5", false},
		{"1 2", false},
		{"--3", false},
	}
	for _, tc := range cases {
		if got := IsWellFormedAndInRange(tc.s); got != tc.want {
			t.Fatalf("IsWellFormedAndInRange(%q): want %v, got %v", tc.s, tc.want, got)
		}
	}
}

func Test_IntVal_ParseValidated(t *testing.T) {
	if got := ParseValidated("-42"); got != -42 {
		t.Fatalf("ParseValidated(-42): got %d", got)
	}
	if got := ParseValidated("2147483647"); got != 2147483647 {
		t.Fatalf("ParseValidated(max): got %d", got)
	}
	// invalid input is the caller's bug; it must still not panic
	if got := ParseValidated("nope"); got != 0 {
		t.Fatalf("ParseValidated(nope): got %d", got)
	}
}

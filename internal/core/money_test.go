package core

import (
	"math"
	"testing"
)

func TestParseAmountToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
		{"92233720368547758.07", math.MaxInt64, true}, // largest representable cents
		{"92233720368547758.08", 0, false},
		{"92233720368547759", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmountToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestParseSignedAmountToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"500", 50000, true},
		{"+500", 50000, true},
		{"-150", -15000, true},
		{"-0.01", -1, true},
		{"- 1.50", -150, true},
		{"0", 0, false}, // zero delta means no movement
		{"-0", 0, false},
		{"--1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"92233720368547758.07", math.MaxInt64, true},
		{"-92233720368547758.07", -math.MaxInt64, true},
		{"92233720368547758.08", 0, false},
		{"92233720368547758.99", 0, false},
		{"-92233720368547758.99", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseSignedAmountToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyDecimal(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{100, "1.00"},
		{123456, "1234.56"},
		{-50, "-0.50"},
		{-15000, "-150.00"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).Decimal(); got != tc.want {
			t.Fatalf("%d cents expected %q, got %q", tc.cents, tc.want, got)
		}
	}
}

func TestDecimalRoundTrips(t *testing.T) {
	for _, cents := range []int64{1, 99, 100, 101, 123456789} {
		s := Money{Cents: cents}.Decimal()
		back, err := ParseAmountToCents(s)
		if err != nil || back != cents {
			t.Fatalf("%d cents: round trip via %q gave %d (err=%v)", cents, s, back, err)
		}
	}
}

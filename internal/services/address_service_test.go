package services

import "testing"

func TestValidPincode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"valid", "411001", true},
		{"padded", " 411001 ", true},
		{"too short", "41100", false},
		{"too long", "4110011", false},
		{"letters", "41100a", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidPincode(tc.in); got != tc.want {
				t.Fatalf("ValidPincode(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"tech@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"missing-at.example.com", false},
		{"no-domain@", false},
		{"@no-local.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateEmail(tt.email); got != tt.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ok, msg := ValidatePassword("short"); ok || msg == "" {
		t.Errorf("ValidatePassword(short) = %v, %q; want rejection with message", ok, msg)
	}
	if ok, msg := ValidatePassword("long enough"); !ok || msg != "" {
		t.Errorf("ValidatePassword(long enough) = %v, %q; want ok", ok, msg)
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  padded  ", "padded"},
		{"nul\x00byte", "nulbyte"},
		{"\x00\x00", ""},
		{"clean", "clean"},
	}

	for _, tt := range tests {
		if got := SanitizeInput(tt.in); got != tt.want {
			t.Errorf("SanitizeInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

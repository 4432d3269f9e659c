package utils

import "testing"

func TestTravelStatus(t *testing.T) {
	tests := []struct {
		name     string
		canceled bool
		verified bool
		want     string
	}{
		{"plain booking", false, false, TravelStatusBooked},
		{"verified booking", false, true, TravelStatusVerified},
		{"canceled booking", true, false, TravelStatusCanceled},
		{"canceled wins over verified", true, true, TravelStatusCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TravelStatus(tt.canceled, tt.verified); got != tt.want {
				t.Fatalf("TravelStatus(%v, %v) = %q, want %q", tt.canceled, tt.verified, got, tt.want)
			}
		})
	}
}

func TestCreditDisplay(t *testing.T) {
	tests := []struct {
		name    string
		balance float64
		want    string
	}{
		{"zero reads No Credits", 0, "No Credits"},
		{"positive balance", 175.00, "$175.00"},
		{"cents formatted", 19.5, "$19.50"},
		{"negative balance stays visible", -20, "-$20.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CreditDisplay(tt.balance); got != tt.want {
				t.Fatalf("CreditDisplay(%v) = %q, want %q", tt.balance, got, tt.want)
			}
		})
	}
}

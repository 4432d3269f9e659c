package middleware

import "testing"

func TestHasAnyRole(t *testing.T) {
	allowList := []string{"Managers", "Human Resources", "Finance"}

	tests := []struct {
		name  string
		roles []string
		want  bool
	}{
		{"single matching role", []string{"Finance"}, true},
		{"match among several", []string{"Staff", "Human Resources"}, true},
		{"no overlap", []string{"Staff", "Travel"}, false},
		{"empty role set", nil, false},
		{"case sensitive", []string{"finance"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasAnyRole(tt.roles, allowList); got != tt.want {
				t.Fatalf("HasAnyRole(%v) = %v, want %v", tt.roles, got, tt.want)
			}
		})
	}
}

func TestHasAnyRoleEmptyAllowList(t *testing.T) {
	if HasAnyRole([]string{"Managers"}, nil) {
		t.Fatal("empty allow-list should grant nothing")
	}
}

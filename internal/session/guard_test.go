package session

import (
	"testing"

	"onlinemart-client/internal/domain"
)

func TestAuthorize(t *testing.T) {
	buyer := Session{Token: "tok", Role: domain.RoleBuyer, Username: "alice", UserID: 7}
	admin := Session{Token: "tok", Role: domain.RoleAdmin, Username: "root", UserID: 1}

	cases := []struct {
		name     string
		session  Session
		required domain.Role
		want     Decision
	}{
		{"signed out", Session{}, domain.RoleBuyer, RedirectToLogin},
		{"signed out no role", Session{}, "", RedirectToLogin},
		{"buyer allowed", buyer, domain.RoleBuyer, Allow},
		{"admin allowed", admin, domain.RoleAdmin, Allow},
		{"buyer blocked from admin", buyer, domain.RoleAdmin, RedirectToLogin},
		{"admin blocked from buyer", admin, domain.RoleBuyer, RedirectToLogin},
		{"any role", buyer, "", Allow},
	}
	for _, tc := range cases {
		if got := Authorize(tc.session, tc.required); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

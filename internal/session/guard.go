package session

import "onlinemart-client/internal/domain"

// Decision is the guard's verdict for a gated destination.
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
)

// Authorize gates access by session presence and, when required is
// non-empty, by role. It is pure: no I/O, evaluated before any fetch.
func Authorize(s Session, required domain.Role) Decision {
	if !s.IsAuthenticated() {
		return RedirectToLogin
	}
	if required != "" && s.Role != required {
		return RedirectToLogin
	}
	return Allow
}

package session

import (
	"os"
	"path/filepath"
	"testing"

	"onlinemart-client/internal/domain"
)

func TestStore_SignInPersistsAndRestores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store := NewStore(path, nil)
	if store.Snapshot().IsAuthenticated() {
		t.Fatalf("a fresh store must start signed out")
	}

	err := store.SignIn(domain.AuthResponse{Token: "tok", Role: domain.RoleBuyer, Username: "alice", UserID: 7})
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}

	restored := NewStore(path, nil).Snapshot()
	if !restored.IsAuthenticated() {
		t.Fatalf("expected the session restored from disk")
	}
	if restored.Token != "tok" || restored.Role != domain.RoleBuyer || restored.Username != "alice" || restored.UserID != 7 {
		t.Fatalf("unexpected restored session %+v", restored)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat session record: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("unexpected session record mode %v", info.Mode().Perm())
	}
}

func TestStore_IncompleteRecordRestoresAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	// Token present but role missing: the record is incomplete and must be
	// discarded rather than half-restored.
	if err := os.WriteFile(path, []byte(`{"token": "tok", "username": "alice", "userId": 7}`), 0o600); err != nil {
		t.Fatalf("write record: %v", err)
	}

	store := NewStore(path, nil)
	if store.Snapshot().IsAuthenticated() {
		t.Fatalf("an incomplete record must restore to signed out")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected the stale record removed, stat err=%v", err)
	}
}

func TestStore_MalformedRecordRestoresAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatalf("write record: %v", err)
	}

	store := NewStore(path, nil)
	if store.Snapshot().IsAuthenticated() {
		t.Fatalf("a malformed record must restore to signed out")
	}
}

func TestStore_SignOutClearsEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path, nil)
	if err := store.SignIn(domain.AuthResponse{Token: "tok", Role: domain.RoleAdmin, Username: "root", UserID: 1}); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	if err := store.SignOut(); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if store.Snapshot() != (Session{}) {
		t.Fatalf("sign out must clear every field, got %+v", store.Snapshot())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected the persisted record removed, stat err=%v", err)
	}

	// Signing out twice is fine.
	if err := store.SignOut(); err != nil {
		t.Fatalf("repeat sign out: %v", err)
	}
}

func TestStore_OnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path, nil)

	var seen []Session
	store.OnChange(func(s Session) { seen = append(seen, s) })

	if err := store.SignIn(domain.AuthResponse{Token: "tok", Role: domain.RoleBuyer, Username: "alice", UserID: 7}); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if err := store.SignOut(); err != nil {
		t.Fatalf("sign out: %v", err)
	}

	if len(seen) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(seen))
	}
	if !seen[0].IsAuthenticated() || seen[1].IsAuthenticated() {
		t.Fatalf("unexpected notifications %+v", seen)
	}
}

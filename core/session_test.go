package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemorySessionLifecycle(t *testing.T) {
	s := NewMemorySession()

	if _, ok := s.Token(); ok {
		t.Fatal("new session should be empty")
	}

	s.Set("tok-1")
	token, ok := s.Token()
	if !ok || token != "tok-1" {
		t.Fatalf("token = %q ok=%v", token, ok)
	}

	s.Clear()
	if _, ok := s.Token(); ok {
		t.Fatal("token should be gone after Clear")
	}
	// Clear is idempotent.
	s.Clear()
}

func TestCompareAndClearGuardsStaleLogout(t *testing.T) {
	s := NewMemorySession()
	s.Set("old")
	epoch := s.Epoch()

	// A fresh login supersedes the epoch the in-flight request captured.
	s.Set("new")

	if s.CompareAndClear(epoch) {
		t.Fatal("stale CompareAndClear should be a no-op")
	}
	if token, _ := s.Token(); token != "new" {
		t.Fatalf("token = %q, want new", token)
	}

	if !s.CompareAndClear(s.Epoch()) {
		t.Fatal("current-epoch CompareAndClear should clear")
	}
	if _, ok := s.Token(); ok {
		t.Fatal("token should be cleared")
	}
}

func TestFileSessionPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first, err := NewFileSession(path)
	if err != nil {
		t.Fatalf("NewFileSession: %v", err)
	}
	first.Set("tok-persisted")
	first.SetUserType("supplier")

	second, err := NewFileSession(path)
	if err != nil {
		t.Fatalf("NewFileSession reload: %v", err)
	}
	token, ok := second.Token()
	if !ok || token != "tok-persisted" {
		t.Fatalf("token = %q ok=%v", token, ok)
	}
	if second.UserType() != "supplier" {
		t.Fatalf("user type = %q", second.UserType())
	}

	second.Clear()
	third, err := NewFileSession(path)
	if err != nil {
		t.Fatalf("NewFileSession after clear: %v", err)
	}
	if _, ok := third.Token(); ok {
		t.Fatal("cleared session should not persist a token")
	}
}

func TestFileSessionToleratesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	s, err := NewFileSession(path)
	if err != nil {
		t.Fatalf("NewFileSession: %v", err)
	}
	if _, ok := s.Token(); ok {
		t.Fatal("corrupt file should read as logged out")
	}
}

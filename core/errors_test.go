package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorPredicates(t *testing.T) {
	err := NewError(ErrNotFound, "group 9 not found", WithStatus(404))

	if !IsNotFound(err) {
		t.Fatal("IsNotFound should match")
	}
	if IsUnauthorized(err) {
		t.Fatal("IsUnauthorized should not match")
	}
	if StatusOf(err) != 404 {
		t.Fatalf("status = %d", StatusOf(err))
	}
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	inner := NewError(ErrUnauthorized, "session expired", WithStatus(401))
	wrapped := fmt.Errorf("loading profile: %w", inner)

	if !IsUnauthorized(wrapped) {
		t.Fatal("predicate should unwrap")
	}
	if StatusOf(wrapped) != 401 {
		t.Fatalf("status = %d", StatusOf(wrapped))
	}
}

func TestWrapErrorPreservesExistingAPIError(t *testing.T) {
	original := NewError(ErrConflict, "already joined")
	rewrapped := WrapError(fmt.Errorf("outer: %w", original), ErrInternal)

	if rewrapped.Code != ErrConflict {
		t.Fatalf("code = %q, want conflict preserved", rewrapped.Code)
	}
}

func TestWrapErrorNil(t *testing.T) {
	if WrapError(nil, ErrInternal) != nil {
		t.Fatal("wrapping nil should return nil")
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewError(ErrTransport, "request to /api/groups failed", WithWrapped(cause))

	if !errors.Is(err, cause) {
		t.Fatal("cause should be reachable via errors.Is")
	}
	if err.Error() != "request to /api/groups failed: connection refused" {
		t.Fatalf("message = %q", err.Error())
	}
}

package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{NotFound("x"), http.StatusNotFound},
		{Validation("x"), http.StatusBadRequest},
		{BadRequest("x"), http.StatusBadRequest},
		{Conflict("x"), http.StatusConflict},
		{Forbidden("x"), http.StatusForbidden},
		{Unauthorized("x"), http.StatusUnauthorized},
		{Unprocessable("x"), http.StatusUnprocessableEntity},
		{Internal("x"), http.StatusInternalServerError},
		{New(KindUnknown, "x"), http.StatusBadRequest},
	}

	for _, tc := range cases {
		if got := tc.err.HTTPStatus(); got != tc.want {
			t.Fatalf("kind %d: expected status %d, got %d", tc.err.Kind, tc.want, got)
		}
	}
}

func TestGetKindFollowsWrappedChain(t *testing.T) {
	err := fmt.Errorf("create gig: %w", Conflict("slug already taken"))

	if !Is(err, KindConflict) {
		t.Fatalf("expected wrapped conflict to be detected, got kind %d", GetKind(err))
	}
	if GetKind(errors.New("plain")) != KindUnknown {
		t.Fatal("expected plain error to have unknown kind")
	}
}

func TestMessagePrefersDomainMessage(t *testing.T) {
	wrapped := fmt.Errorf("update gig: %w", Forbidden("not your listing").WithOp("gigs.Update"))

	if got := Message(wrapped); got != "not your listing" {
		t.Fatalf("expected domain message, got %q", got)
	}
	if got := Message(errors.New("Network error")); got != "Network error" {
		t.Fatalf("expected raw message, got %q", got)
	}
	if got := Message(nil); got != "" {
		t.Fatalf("expected empty message for nil, got %q", got)
	}
}

func TestErrorStringIncludesOp(t *testing.T) {
	err := NotFound("gig not found").WithOp("gigs.GetBySlug")
	if err.Error() != "gigs.GetBySlug: gig not found" {
		t.Fatalf("unexpected error string %q", err.Error())
	}
}

package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/Faizan-Cheema/popstream/internal/client/services"
	"github.com/Faizan-Cheema/popstream/internal/client/session"
)

func TestSignUp_Success(t *testing.T) {
	f := &fakeAuthSvc{}
	a, out := newTestApp()
	a.auth = f

	stubInputs(t,
		[]string{"alice@example.org", "alice", ""},
		[]string{"password123", "password123"},
	)

	if err := a.SignUp(context.Background()); err != nil {
		t.Fatalf("SignUp err: %v", err)
	}
	if f.signUpParams.Email != "alice@example.org" || f.signUpParams.Username != "alice" {
		t.Fatalf("params mismatch: %+v", f.signUpParams)
	}
	if f.signUpParams.AvatarPath != "" {
		t.Fatalf("unexpected avatar path: %q", f.signUpParams.AvatarPath)
	}
	if !strings.Contains(out.String(), "Please login") {
		t.Fatalf("missing login hint: %q", out.String())
	}
}

func TestSignUp_WithAvatar(t *testing.T) {
	f := &fakeAuthSvc{}
	a, _ := newTestApp()
	a.auth = f

	stubInputs(t,
		[]string{"alice@example.org", "alice", "/tmp/me.png"},
		[]string{"password123", "password123"},
	)

	if err := a.SignUp(context.Background()); err != nil {
		t.Fatalf("SignUp err: %v", err)
	}
	if f.signUpParams.AvatarPath != "/tmp/me.png" {
		t.Fatalf("avatar path mismatch: %q", f.signUpParams.AvatarPath)
	}
}

func TestSignUp_ValidationErrorRendered(t *testing.T) {
	f := &fakeAuthSvc{signUpErr: &services.ValidationError{Message: "passwords do not match"}}
	a, out := newTestApp()
	a.auth = f

	stubInputs(t,
		[]string{"alice@example.org", "alice", ""},
		[]string{"password123", "different123"},
	)

	if err := a.SignUp(context.Background()); err == nil {
		t.Fatalf("want error")
	}
	if !strings.Contains(out.String(), "passwords do not match") {
		t.Fatalf("validation message not shown: %q", out.String())
	}
}

func TestSignIn_Success(t *testing.T) {
	f := &fakeAuthSvc{signInSession: session.Session{Username: "alice", Email: "alice@example.org"}}
	a, out := newTestApp()
	a.auth = f

	stubInputs(t,
		[]string{"alice@example.org", "y"},
		[]string{"password123"},
	)

	if err := a.SignIn(context.Background()); err != nil {
		t.Fatalf("SignIn err: %v", err)
	}
	if f.signInEmail != "alice@example.org" || f.signInPassword != "password123" {
		t.Fatalf("credentials mismatch: %q %q", f.signInEmail, f.signInPassword)
	}
	if !f.signInRemember {
		t.Fatalf("remember flag not set")
	}
	if !strings.Contains(out.String(), "Welcome, alice!") {
		t.Fatalf("missing welcome: %q", out.String())
	}
}

func TestSignIn_NoRemember(t *testing.T) {
	f := &fakeAuthSvc{}
	a, _ := newTestApp()
	a.auth = f

	stubInputs(t,
		[]string{"alice@example.org", ""},
		[]string{"password123"},
	)

	_ = a.SignIn(context.Background())
	if f.signInRemember {
		t.Fatalf("remember flag set without consent")
	}
}

func TestSignIn_InvalidCredentialsRendered(t *testing.T) {
	f := &fakeAuthSvc{signInErr: services.ErrInvalidCredentials}
	a, out := newTestApp()
	a.auth = f

	stubInputs(t,
		[]string{"alice@example.org", "n"},
		[]string{"wrongpassword"},
	)

	if err := a.SignIn(context.Background()); err == nil {
		t.Fatalf("want error")
	}
	if !strings.Contains(out.String(), "Invalid credentials") {
		t.Fatalf("missing message: %q", out.String())
	}
}

func TestSignOut(t *testing.T) {
	f := &fakeAuthSvc{}
	a, out := newTestApp()
	a.auth = f

	if err := a.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut err: %v", err)
	}
	if !f.signOutCalled {
		t.Fatalf("service SignOut not called")
	}
	if !strings.Contains(out.String(), "Signed out.") {
		t.Fatalf("missing confirmation: %q", out.String())
	}
}

package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/Faizan-Cheema/popstream/internal/client/services"
	"github.com/Faizan-Cheema/popstream/internal/client/session"
	"github.com/Faizan-Cheema/popstream/internal/logging"
)

// stubInputs replaces the interactive input seams with queues: each prompt
// pops the next queued answer. Restores the originals on test cleanup.
func stubInputs(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			t.Fatalf("unexpected text prompt")
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(_ io.Writer, _ string) (string, error) {
		if len(passwords) == 0 {
			t.Fatalf("unexpected password prompt")
		}
		v := passwords[0]
		passwords = passwords[1:]
		return v, nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func newTestApp() (*App, *bytes.Buffer) {
	var out bytes.Buffer
	a := &App{
		sessions: session.NewStore(session.NewMemoryBackend(), session.NewMemoryBackend()),
		log:      logging.New(io.Discard, "error"),
		reader:   bufio.NewReader(strings.NewReader("")),
		out:      &out,
	}
	return a, &out
}

type fakeAuthSvc struct {
	signUpParams services.SignUpParams
	signUpErr    error

	signInEmail    string
	signInPassword string
	signInRemember bool
	signInSession  session.Session
	signInErr      error

	signOutCalled bool
	signOutErr    error

	forgotEmail string
	forgotMsg   string
	forgotErr   error

	validateUID   string
	validateToken string
	validateErr   error

	resetPassword string
	resetConfirm  string
	resetMsg      string
	resetErr      error
	resetCalled   bool
}

func (f *fakeAuthSvc) SignUp(_ context.Context, p services.SignUpParams) error {
	f.signUpParams = p
	return f.signUpErr
}

func (f *fakeAuthSvc) SignIn(_ context.Context, email, password string, remember bool) (session.Session, error) {
	f.signInEmail, f.signInPassword, f.signInRemember = email, password, remember
	return f.signInSession, f.signInErr
}

func (f *fakeAuthSvc) SignOut(context.Context) error {
	f.signOutCalled = true
	return f.signOutErr
}

func (f *fakeAuthSvc) ForgotPassword(_ context.Context, email string) (string, error) {
	f.forgotEmail = email
	return f.forgotMsg, f.forgotErr
}

func (f *fakeAuthSvc) ValidateResetLink(_ context.Context, uid, token string) error {
	f.validateUID, f.validateToken = uid, token
	return f.validateErr
}

func (f *fakeAuthSvc) ResetPassword(_ context.Context, uid, token, password, confirm string) (string, error) {
	f.resetCalled = true
	f.resetPassword, f.resetConfirm = password, confirm
	return f.resetMsg, f.resetErr
}

type fakeProfileSvc struct {
	user       services.User
	profileErr error

	lastUpdate services.ProfileUpdate
	updated    services.User
	changed    bool
	updateErr  error

	avatarPath string
	avatarErr  error
}

func (f *fakeProfileSvc) Profile(context.Context) (services.User, error) {
	return f.user, f.profileErr
}

func (f *fakeProfileSvc) Update(_ context.Context, _ services.User, upd services.ProfileUpdate) (services.User, bool, error) {
	f.lastUpdate = upd
	return f.updated, f.changed, f.updateErr
}

func (f *fakeProfileSvc) UpdateAvatar(_ context.Context, path string) error {
	f.avatarPath = path
	return f.avatarErr
}

type fakeSubsSvc struct {
	status    string
	statusErr error

	lastPlan    string
	checkoutURL string
	checkoutErr error
}

func (f *fakeSubsSvc) Status(context.Context) (string, error) {
	return f.status, f.statusErr
}

func (f *fakeSubsSvc) Checkout(_ context.Context, plan string) (string, error) {
	f.lastPlan = plan
	return f.checkoutURL, f.checkoutErr
}

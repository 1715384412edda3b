package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Faizan-Cheema/popstream/internal/client/api"
	"github.com/Faizan-Cheema/popstream/internal/client/config"
	"github.com/Faizan-Cheema/popstream/internal/client/services"
	"github.com/Faizan-Cheema/popstream/internal/client/session"
	"github.com/Faizan-Cheema/popstream/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	sessions *session.Store
	auth     services.AuthService
	profile  services.ProfileService
	subs     services.SubscriptionService
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	db       *sql.DB

	// delay before returning to sign-in after a successful password reset
	navDelay time.Duration
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.OpenDB(ctx, c.SessionDBPath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "path", c.SessionDBPath, "error", err)
		return nil, err
	}

	sessions := session.NewStore(session.NewSQLiteBackend(db), session.NewMemoryBackend())
	gw := api.NewGateway(c.APIBaseURL, c.RequestTimeout, sessions, log)

	return &App{
		config:   c,
		sessions: sessions,
		auth:     services.NewAuthService(gw, sessions, log),
		profile:  services.NewProfileService(gw, sessions, log),
		subs:     services.NewSubscriptionService(gw, sessions, log),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		db:       db,
		navDelay: 3 * time.Second,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	_, err := a.sessions.Load(context.Background())
	return err == nil
}

func (a *App) getStatus() string {
	s, err := a.sessions.Load(context.Background())
	if err != nil {
		return ""
	}
	name := s.Username
	if name == "" {
		name = s.Email
	}
	return fmt.Sprintf("(%s)", name)
}

// renderError translates a flow failure into the message the user sees.
// Nothing is swallowed: every failure ends up on the terminal.
func (a *App) renderError(err error) {
	var verr *services.ValidationError
	var apiErr *api.APIError

	switch {
	case errors.As(err, &verr):
		fmt.Fprintln(a.out, verr.Message)
	case errors.Is(err, services.ErrInvalidCredentials):
		fmt.Fprintln(a.out, "Invalid credentials")
	case errors.Is(err, services.ErrInvalidResetLink):
		fmt.Fprintln(a.out, "The password reset link is invalid or has expired.")
	case errors.Is(err, api.ErrUnauthorized):
		fmt.Fprintln(a.out, "Session expired. Please login again.")
	case errors.Is(err, api.ErrUnavailable):
		fmt.Fprintln(a.out, "Server unavailable. Please try again later.")
	case errors.As(err, &apiErr):
		fmt.Fprintln(a.out, apiErr.Message)
	default:
		fmt.Fprintln(a.out, err.Error())
	}
}

// StartSessionWatcher polls the session store and announces when a session
// present at the previous tick has disappeared, which happens when another
// process (another terminal, another tab of the same account) signed out.
func (a *App) StartSessionWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	wasLoggedIn := a.isLoggedIn()

	for {
		select {
		case <-ticker.C:
			loggedIn := a.isLoggedIn()
			if wasLoggedIn && !loggedIn {
				fmt.Fprintln(a.out, "Signed out in another session.")
			}
			wasLoggedIn = loggedIn
		case <-ctx.Done():
			return
		}
	}
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	SignIn(ctx context.Context) error
	SignOut(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Profile(ctx context.Context) error
	SetUsername(ctx context.Context) error
	SetFirstName(ctx context.Context) error
	SetLastName(ctx context.Context) error
	SetAvatar(ctx context.Context) error
	Subscription(ctx context.Context) error
	Checkout(ctx context.Context, plan string) error
}

// runREPL starts a simple read–eval–print loop for the POP Stream CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands only run one at a time: a second submission of the same command
// cannot start until the first one has returned.
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             — show available commands
//	  - signup           — create an account
//	  - login            — authenticate
//	  - forgot           — request a password reset email
//	  - reset            — reset the password using an emailed link
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - help             — show available commands
//	  - profile          — show the current user's profile
//	  - setusername      — change the username
//	  - setfirstname     — change the first name
//	  - setlastname      — change the last name
//	  - setavatar        — upload a new profile image
//	  - subscription     — show the current subscription type (alias: status)
//	  - checkout <plan>  — start checkout for a plan (monthly or yearly)
//	  - logout           — sign out
//	  - exit | quit      — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pop %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		// account commands need a session; refusing them up front keeps
		// a signed-out user from seeing a confusing server rejection
		switch cmd {
		case "profile", "setusername", "setfirstname", "setlastname",
			"setavatar", "subscription", "status", "checkout":
			if !a.isLoggedIn() {
				printlnFn("Please login first.")
				continue
			}
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, setusername, setfirstname, setlastname, setavatar, subscription, checkout <plan>, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, forgot, reset, exit")
			}

		case "signup":
			_ = a.SignUp(ctx)

		case "login":
			_ = a.SignIn(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "reset":
			_ = a.ResetPassword(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "setusername":
			_ = a.SetUsername(ctx)

		case "setfirstname":
			_ = a.SetFirstName(ctx)

		case "setlastname":
			_ = a.SetLastName(ctx)

		case "setavatar":
			_ = a.SetAvatar(ctx)

		case "subscription", "status":
			_ = a.Subscription(ctx)

		case "checkout":
			if len(args) == 0 {
				printlnFn("Usage: checkout <monthly|yearly>")
				continue
			}
			_ = a.Checkout(ctx, args[0])

		case "logout":
			_ = a.SignOut(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

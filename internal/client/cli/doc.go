// Package cli implements the interactive terminal front end of the
// popstream client: a read–eval–print loop whose commands map one-to-one
// onto the account flows (sign-up, sign-in, password recovery, profile
// editing, subscription checkout).
//
// The REPL is strictly sequential: a command runs to completion before the
// next prompt is shown, so a flow can never have two submissions in flight.
// A background watcher polls the session store and announces when another
// process signed the user out.
package cli

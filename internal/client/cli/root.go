package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to POP Stream CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	go func() {
		a.StartSessionWatcher(ctx, a.config.SessionCheckInterval)
	}()

	runREPL(ctx, a, a.getStatus, scanner)
}

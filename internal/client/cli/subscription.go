package cli

import (
	"context"
	"fmt"
)

// Subscription prints the current subscription type.
func (a *App) Subscription(ctx context.Context) error {
	plan, err := a.subs.Status(ctx)
	if err != nil {
		a.renderError(err)
		return err
	}

	if plan == "" {
		fmt.Fprintln(a.out, "No active subscription.")
		return nil
	}
	fmt.Fprintf(a.out, "Current subscription: %s\n", plan)
	return nil
}

// Checkout starts a checkout session for the given plan and prints the
// payment URL to open in a browser.
func (a *App) Checkout(ctx context.Context, plan string) error {
	url, err := a.subs.Checkout(ctx, plan)
	if err != nil {
		a.renderError(err)
		return err
	}

	fmt.Fprintln(a.out, "Open this URL in your browser to complete the payment:")
	fmt.Fprintln(a.out, url)
	return nil
}

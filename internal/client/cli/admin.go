package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/todokeeper/internal/client/models"
)

// Reset deletes the logged-in user's account and lists after confirmation and
// logs out. "reset all" wipes every user's data and is only available when the
// client was started with -allow-reset.
func (a *App) Reset(ctx context.Context, args []string) error {
	switch {
	case len(args) == 0:
		return a.resetAccount(ctx)
	case len(args) == 1 && args[0] == "all":
		return a.resetAll(ctx)
	}
	return errResetUsage
}

func (a *App) resetAccount(ctx context.Context) error {
	ok, err := Confirm(a.reader, fmt.Sprintf("This deletes the account '%s' and all its lists. Continue?", a.userName), a.out)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Cancelled")
		return nil
	}

	n, err := a.auth.DeleteAccount(ctx, a.userName)
	if err != nil {
		return err
	}
	a.userName = ""
	a.filter = models.DefaultTaskFilter()
	printlnFn(successStyle.Render(fmt.Sprintf("Account deleted with %d list(s)", n)))
	return nil
}

func (a *App) resetAll(ctx context.Context) error {
	if !a.config.AllowReset {
		return errResetDisabled
	}

	ok, err := Confirm(a.reader, "This deletes ALL users, lists and tasks. Continue?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Cancelled")
		return nil
	}

	if err := a.state.Reset(ctx); err != nil {
		return err
	}
	a.userName = ""
	a.filter = models.DefaultTaskFilter()
	printlnFn(successStyle.Render("Database reset successfully!"))
	return nil
}

package cli

import (
	"bytes"
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/client/models"
	"github.com/dmitrijs2005/todokeeper/internal/common"
)

// Register asks for a username and the password twice, then creates the user.
// The user is not logged in afterwards.
func (a *App) Register(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirmation, err := GetPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	if userName == "" || len(password) == 0 {
		return errEmptyCredentials
	}
	if !bytes.Equal(password, confirmation) {
		return errPasswordMismatch
	}

	user, err := a.auth.Register(ctx, userName, password)
	if err != nil {
		return err
	}

	printlnFn(successStyle.Render("✓ Registration successful! You can login now as " + user.Username))
	return nil
}

// Login authenticates the user and drops a selection that is not theirs.
func (a *App) Login(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if userName == "" || len(password) == 0 {
		return errEmptyCredentials
	}

	user, err := a.auth.Authenticate(ctx, userName, password)
	if err != nil {
		return err
	}

	a.userName = user.Username
	a.filter = models.DefaultTaskFilter()

	if _, ok := a.lists.CurrentList(a.userName); !ok {
		if err := a.lists.ClearSelection(ctx); err != nil {
			return err
		}
	}

	printlnFn(titleStyle.Render("Welcome, " + a.userName + "!"))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.log.Info(ctx, "user logged out", "user", a.userName)
	a.userName = ""
	a.filter = models.DefaultTaskFilter()
	printlnFn("Logged out")
	return nil
}

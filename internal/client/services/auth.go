package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/todokeeper/internal/client/models"
	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/cryptox"
)

const (
	MinUsernameLength = 3
	MinPasswordLength = 4
)

// AuthService registers users and checks their credentials.
//
// Usernames are trimmed and then matched exactly (case-sensitive). Passwords
// are only ever used to derive keys; callers own the byte slices and should
// wipe them afterwards.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) (*models.User, error)
	Authenticate(ctx context.Context, username string, password []byte) (*models.User, error)
	DeleteAccount(ctx context.Context, username string) (int, error)
}

type authService struct {
	state *State
}

func NewAuthService(state *State) AuthService {
	return &authService{state: state}
}

// Register creates a user with a fresh salt and the PBKDF2 key of password.
// An existing username yields common.ErrUsernameTaken and leaves the stored
// credentials untouched.
func (a *authService) Register(ctx context.Context, username string, password []byte) (*models.User, error) {
	username = strings.TrimSpace(username)
	if utf8.RuneCountInString(username) < MinUsernameLength {
		return nil, common.ErrInvalidUsername
	}
	if utf8.RuneCount(password) < MinPasswordLength {
		return nil, common.ErrInvalidPassword
	}
	if _, exists := a.state.doc.Users[username]; exists {
		return nil, fmt.Errorf("register %q: %w", username, common.ErrUsernameTaken)
	}

	salt, key := cryptox.HashPassword(password)
	user := &models.User{
		Username:     username,
		PasswordHash: models.PasswordHash{Salt: salt, Key: key},
		CreatedAt:    a.state.timestamp(),
	}

	err := a.state.commit(ctx, "register", func(doc *models.Document) error {
		doc.Users[username] = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.state.log.Info(ctx, "user registered", "user", username)
	return user.Clone(), nil
}

// Authenticate returns the user if password matches. Unknown users yield
// common.ErrUserNotFound and wrong passwords common.ErrInvalidCredentials;
// both are common.ErrAuth, and the UI reports them identically.
func (a *authService) Authenticate(ctx context.Context, username string, password []byte) (*models.User, error) {
	username = strings.TrimSpace(username)

	user, ok := a.state.doc.Users[username]
	if !ok {
		a.state.log.Info(ctx, "login rejected", "user", username, "reason", "unknown user")
		return nil, fmt.Errorf("authenticate %q: %w", username, common.ErrUserNotFound)
	}

	if !cryptox.VerifyPassword(password, user.PasswordHash.Salt, user.PasswordHash.Key) {
		a.state.log.Info(ctx, "login rejected", "user", username, "reason", "bad password")
		return nil, fmt.Errorf("authenticate %q: %w", username, common.ErrInvalidCredentials)
	}

	a.state.log.Info(ctx, "user logged in", "user", username)
	return user.Clone(), nil
}

// DeleteAccount removes username together with the lists it owns and returns
// how many lists went. Other users' lists are never touched. A selection that
// pointed at one of the removed lists is cleared.
func (a *authService) DeleteAccount(ctx context.Context, username string) (int, error) {
	removed := 0
	err := a.state.commit(ctx, "delete account", func(doc *models.Document) error {
		if _, ok := doc.Users[username]; !ok {
			return fmt.Errorf("delete account %q: %w", username, common.ErrUserNotFound)
		}
		for id, l := range doc.Lists {
			if l.Owner != username {
				continue
			}
			delete(doc.Lists, id)
			removed++
			if doc.Selected() == id {
				doc.Select("")
			}
		}
		delete(doc.Users, username)
		return nil
	})
	if err != nil {
		return 0, err
	}

	a.state.log.Warn(ctx, "account deleted", "user", username, "lists", removed)
	return removed, nil
}

package cli

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/todokeeper/internal/common"
)

// uiError is a problem with the user's input that never reached the services.
// Its text is shown as is.
type uiError string

func (e uiError) Error() string { return string(e) }

const (
	errEmptyCredentials uiError = "Please enter both username and password"
	errPasswordMismatch uiError = "Passwords do not match"
	errNoListSelected   uiError = "No list selected. Create one with 'newlist' or pick one with 'use <n>'"
	errNeedList         uiError = "Usage: use <number|id|name>"
	errBadListNumber    uiError = "No list with that number, see 'lists'"
	errUnknownList      uiError = "No such list, see 'lists'"
	errEmptyTask        uiError = "Task text must not be empty"
	errNeedTaskNumber   uiError = "Please give a task number, e.g. 'done 1'"
	errBadTaskNumber    uiError = "No task with that number, see 'tasks'"
	errBadFilter        uiError = "Usage: filter [all|pending|completed] [high|medium|low|any]"
	errResetUsage       uiError = "Usage: reset [all]"
	errResetDisabled    uiError = "Resetting all data is disabled; start the client with -allow-reset"
)

var validationErrors = []error{
	common.ErrInvalidName,
	common.ErrInvalidText,
	common.ErrInvalidPriority,
	common.ErrInvalidUsername,
	common.ErrInvalidPassword,
}

// describeErr turns a command error into the line shown to the user.
// Unknown users and wrong passwords read the same.
func describeErr(err error) string {
	var ue uiError
	if errors.As(err, &ue) {
		return string(ue)
	}

	switch {
	case errors.Is(err, common.ErrUserNotFound), errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, common.ErrUsernameTaken):
		return "Username already exists"
	case errors.Is(err, common.ErrForbidden):
		return "You don't have permission to access this list"
	case errors.Is(err, common.ErrListNotFound):
		return "List not found, it may have been deleted"
	case errors.Is(err, common.ErrTaskNotFound):
		return "Task not found, it may have been deleted"
	}

	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return capitalize(v.Error())
		}
	}

	return "Error: " + err.Error()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

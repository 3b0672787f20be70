package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/todokeeper/internal/client/models"
)

// Lists prints the user's lists, numbered for use with "use" and "dellist".
func (a *App) Lists(ctx context.Context) error {
	lists := a.lists.Lists(a.userName)
	if len(lists) == 0 {
		printlnFn("No lists yet. Create one with 'newlist'")
		return nil
	}

	current, _ := a.lists.CurrentList(a.userName)
	printlnFn(headerStyle.Render("📋 My Lists"))
	for i, l := range lists {
		printlnFn(renderListLine(i+1, l, current != nil && current.ID == l.ID))
	}
	return nil
}

// NewList creates a list named after the arguments, or prompts for a name.
func (a *App) NewList(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if name == "" {
		var err error
		if name, err = GetSimpleText(a.reader, "List name", a.out); err != nil {
			return err
		}
	}

	l, err := a.lists.CreateList(ctx, a.userName, name)
	if err != nil {
		return err
	}

	printlnFn(successStyle.Render(fmt.Sprintf("Created list %s %s", l.Emoji, l.Name)))
	return nil
}

func (a *App) UseList(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errNeedList
	}
	l, err := a.findList(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if err := a.lists.SelectList(ctx, l.ID, a.userName); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Now using %s %s", l.Emoji, l.Name))
	return nil
}

// DeleteList removes the named list, or the current one, after confirmation.
func (a *App) DeleteList(ctx context.Context, args []string) error {
	var (
		l   *models.List
		err error
	)
	if len(args) == 0 {
		l, err = a.currentList()
	} else {
		l, err = a.findList(strings.Join(args, " "))
	}
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Are you sure you want to delete '%s'?", l.Name), a.out)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Cancelled")
		return nil
	}

	name := l.Name
	if err := a.lists.DeleteList(ctx, l.ID, a.userName); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Deleted list %s", name))
	return nil
}

// findList resolves a 1-based position in the Lists output, a list id or a
// list name, in that order.
func (a *App) findList(ref string) (*models.List, error) {
	lists := a.lists.Lists(a.userName)

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(lists) {
			return nil, errBadListNumber
		}
		return lists[n-1], nil
	}

	for _, l := range lists {
		if l.ID == ref {
			return l, nil
		}
	}
	for _, l := range lists {
		if strings.EqualFold(l.Name, ref) {
			return l, nil
		}
	}
	return nil, errUnknownList
}

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Lists(ctx context.Context) error
	NewList(ctx context.Context, args []string) error
	UseList(ctx context.Context, args []string) error
	DeleteList(ctx context.Context, args []string) error

	AddTask(ctx context.Context, args []string) error
	ShowTasks(ctx context.Context) error
	Filter(ctx context.Context, args []string) error
	ToggleTask(ctx context.Context, args []string) error
	DeleteTask(ctx context.Context, args []string) error
	ClearCompleted(ctx context.Context) error
	ClearAll(ctx context.Context) error
	Stats(ctx context.Context) error

	Reset(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: lists, newlist [name], use <n>, dellist [n], " +
		"add [text], (t)asks, filter [all|pending|completed|high|medium|low|any], " +
		"done <n>, rm <n>, clear, clearall, stats, logout, reset [all], exit"
)

// runREPL starts a read–eval–print loop for the todo CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on a. Commands that need a user are refused until
// login. Errors returned by handlers are turned into user-facing messages by
// describeErr; the loop itself never stops on them. The loop exits on EOF or
// when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("todo%s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				printlnFn("Input error:", err)
			}
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if needsLogin(cmd) && !a.isLoggedIn() {
			printlnFn("Please login first")
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)

		case "lists", "l":
			cmdErr = a.Lists(ctx)
		case "newlist":
			cmdErr = a.NewList(ctx, args)
		case "use":
			cmdErr = a.UseList(ctx, args)
		case "dellist":
			cmdErr = a.DeleteList(ctx, args)

		case "add":
			cmdErr = a.AddTask(ctx, args)
		case "tasks", "t":
			cmdErr = a.ShowTasks(ctx)
		case "filter":
			cmdErr = a.Filter(ctx, args)
		case "done", "toggle":
			cmdErr = a.ToggleTask(ctx, args)
		case "rm":
			cmdErr = a.DeleteTask(ctx, args)
		case "clear":
			cmdErr = a.ClearCompleted(ctx)
		case "clearall":
			cmdErr = a.ClearAll(ctx)
		case "stats":
			cmdErr = a.Stats(ctx)

		case "reset":
			cmdErr = a.Reset(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(describeErr(cmdErr))
		}
	}
}

func needsLogin(cmd string) bool {
	switch cmd {
	case "help", "register", "login", "exit", "quit":
		return false
	}
	return true
}

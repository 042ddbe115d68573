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

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests use a recording stub.
type execIface interface {
	isLoggedIn() bool
	Go(ctx context.Context, path string) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Edit(ctx context.Context) error
	Set(ctx context.Context, field, value string) error
	Save(ctx context.Context) error
	Cancel(ctx context.Context) error
	Show(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands from in until EOF, "exit" or "quit". Errors
// returned by handlers are ignored here; handlers report their own.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("userdash %s> ", statusFn()))

		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, profile, go <path>, edit, set <field> <value>, save, cancel, show, logout, exit")
			} else {
				printlnFn("Available commands: login, register, home, go <path>, show, exit")
			}

		case "go", "open":
			if len(args) == 0 {
				printlnFn("Usage: go <path>")
				continue
			}
			_ = a.Go(ctx, args[0])

		case "home":
			_ = a.Go(ctx, "/home")

		case "profile":
			_ = a.Go(ctx, "/profile")

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "set":
			if len(args) == 0 {
				printlnFn("Usage: set <field> <value>")
				continue
			}
			_ = a.Set(ctx, args[0], strings.Join(args[1:], " "))

		case "save":
			_ = a.Save(ctx)

		case "cancel":
			_ = a.Cancel(ctx)

		case "show":
			_ = a.Show(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the shell needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Account(ctx context.Context) error
	Post(ctx context.Context) error
	Posts(ctx context.Context) error
	Archived(ctx context.Context) error
	Edit(ctx context.Context) error
	Archive(ctx context.Context) error
	Restore(ctx context.Context) error
	Delete(ctx context.Context) error
	Search(ctx context.Context) error
	Export(ctx context.Context) error
	Open(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the dashvault CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not signed in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — sign in
//	  - exit | quit    — leave the program
//
//	Signed in:
//	  - help           — show available commands
//	  - whoami         — show the current account
//	  - account        — update the current account
//	  - post           — write a new blog entry
//	  - posts | l      — list active entries
//	  - archived       — list archived entries
//	  - edit           — edit an entry
//	  - archive        — archive an entry
//	  - restore        — restore an archived entry
//	  - delete         — delete an entry
//	  - search         — search active entries by title
//	  - export         — export active entries to JSON
//	  - open           — switch the dashboard section
//	  - logout         — sign out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("dv> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, account, post, (l)posts, archived, edit, archive, restore, delete, search, export, open, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "account":
			_ = a.Account(ctx)

		case "post":
			_ = a.Post(ctx)

		case "l", "posts":
			_ = a.Posts(ctx)

		case "archived":
			_ = a.Archived(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "archive":
			_ = a.Archive(ctx)

		case "restore":
			_ = a.Restore(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "search":
			_ = a.Search(ctx)

		case "export":
			_ = a.Export(ctx)

		case "open":
			_ = a.Open(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

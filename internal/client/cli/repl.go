package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Home(ctx context.Context) error
	Genres(ctx context.Context) error
	Genre(ctx context.Context, slug string) error
	Search(ctx context.Context, term string) error
	Movie(ctx context.Context, id string) error
	ToggleFavorite(ctx context.Context, movieID string) error
	Favorites(ctx context.Context) error
	SetupProfile(ctx context.Context) error
	Play(ctx context.Context, movieID string) error
}

// runREPL starts a simple read–eval–print loop for the moviestream CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Each command runs under its own child context, cancelled when the command
// returns, so leaving a view abandons its in-flight fetches.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ms> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		cmdCtx, cancel := context.WithCancel(ctx)

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, genres, genre <slug>, search <term>, movie <id>, fav <id>, favorites, play <id>, setup-profile, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, register, exit")
			}

		case "login":
			_ = a.Login(cmdCtx)

		case "register":
			_ = a.Register(cmdCtx)

		case "logout":
			_ = a.Logout(cmdCtx)

		case "whoami":
			_ = a.WhoAmI(cmdCtx)

		case "home":
			_ = a.Home(cmdCtx)

		case "genres":
			_ = a.Genres(cmdCtx)

		case "genre":
			if len(args) == 0 {
				printlnFn("Usage: genre <slug>")
				break
			}
			_ = a.Genre(cmdCtx, args[0])

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <term>")
				break
			}
			_ = a.Search(cmdCtx, strings.Join(args, " "))

		case "movie":
			if len(args) == 0 {
				printlnFn("Usage: movie <id>")
				break
			}
			_ = a.Movie(cmdCtx, args[0])

		case "fav":
			if len(args) == 0 {
				printlnFn("Usage: fav <movie-id>")
				break
			}
			_ = a.ToggleFavorite(cmdCtx, args[0])

		case "favorites":
			_ = a.Favorites(cmdCtx)

		case "setup-profile":
			_ = a.SetupProfile(cmdCtx)

		case "play":
			if len(args) == 0 {
				printlnFn("Usage: play <movie-id>")
				break
			}
			_ = a.Play(cmdCtx, args[0])

		case "exit", "quit":
			cancel()
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		cancel()
	}
}

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
	isSeller() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Browse(ctx context.Context) error
	Search(ctx context.Context) error
	Sort(ctx context.Context, criterion string) error
	View(ctx context.Context, id string) error
	Sell(ctx context.Context) error
	Unlist(ctx context.Context, id string) error
	Stats(ctx context.Context) error
	AddToCart(ctx context.Context, id string) error
	RemoveFromCart(ctx context.Context, id string) error
	AdjustQuantity(ctx context.Context, id, delta string) error
	ShowCart(ctx context.Context) error
	Checkout(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Preferences(ctx context.Context) error
	UpdatePhoto(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the marketplace CLI.
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
//	Always:
//	  - help               — show available commands
//	  - browse | (l)ist    — list all products
//	  - search             — interactive search (term + category)
//	  - sort <criterion>   — newest, price-low, price-high, popular
//	  - view <id>          — show a product and count the view
//	  - cart               — show the cart with totals
//	  - add <id>           — add a product to the cart
//	  - remove <id>        — remove a cart line
//	  - qty <id> <n>       — adjust a line's quantity by n (may be negative)
//	  - checkout           — place the order and empty the cart
//	  - exit | quit        — leave the program
//
//	Not logged in:
//	  - register           — create an account
//	  - login              — authenticate
//
//	Logged in:
//	  - profile            — show the profile
//	  - edit               — edit name, email, phone
//	  - password           — change the password
//	  - prefs              — edit notification and locale preferences
//	  - photo              — set a profile picture from a file
//	  - logout             — log out
//
//	Sellers additionally:
//	  - sell               — create a listing
//	  - unlist <id>        — delete an own listing
//	  - stats              — seller dashboard
//
// Any errors returned by command handlers are ignored here; handlers
// notify the user themselves. This keeps the REPL loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pentoria %s> ", statusFn()))
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

		switch cmd {
		case "help":
			printlnFn("Available commands: browse, search, sort <criterion>, view <id>, cart, add <id>, remove <id>, qty <id> <n>, checkout, exit")
			if a.isLoggedIn() {
				printlnFn("Account: profile, edit, password, prefs, photo, logout")
			} else {
				printlnFn("Account: register, login")
			}
			if a.isSeller() {
				printlnFn("Selling: sell, unlist <id>, stats")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "b", "browse", "l", "list":
			_ = a.Browse(ctx)

		case "search":
			_ = a.Search(ctx)

		case "sort":
			if len(args) == 0 {
				printlnFn("Usage: sort newest|price-low|price-high|popular")
				continue
			}
			_ = a.Sort(ctx, args[0])

		case "view":
			if len(args) == 0 {
				printlnFn("Usage: view <id>")
				continue
			}
			_ = a.View(ctx, args[0])

		case "sell":
			_ = a.Sell(ctx)

		case "unlist":
			if len(args) == 0 {
				printlnFn("Usage: unlist <id>")
				continue
			}
			_ = a.Unlist(ctx, args[0])

		case "stats":
			_ = a.Stats(ctx)

		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <id>")
				continue
			}
			_ = a.AddToCart(ctx, args[0])

		case "remove":
			if len(args) == 0 {
				printlnFn("Usage: remove <id>")
				continue
			}
			_ = a.RemoveFromCart(ctx, args[0])

		case "qty":
			if len(args) < 2 {
				printlnFn("Usage: qty <id> <n>")
				continue
			}
			_ = a.AdjustQuantity(ctx, args[0], args[1])

		case "cart":
			_ = a.ShowCart(ctx)

		case "checkout":
			_ = a.Checkout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "password":
			_ = a.ChangePassword(ctx)

		case "prefs":
			_ = a.Preferences(ctx)

		case "photo":
			_ = a.UpdatePhoto(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

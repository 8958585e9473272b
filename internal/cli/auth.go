package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/dashvault/internal/app/services"
	"github.com/dmitrijs2005/dashvault/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, email and password and creates a new
// account. A duplicate email is reported to the user; other errors are
// returned unchanged. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.accounts.Create(ctx, username, email, string(password)); err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			printlnFn("An account with this email already exists")
			return err
		}
		if errors.Is(err, common.ErrValidation) {
			printlnFn("All fields are required")
			return err
		}
		return err
	}

	printlnFn("Success!")
	return nil
}

// Login prompts for credentials and signs in. Invalid credentials are
// reported to the user; store failures are returned unchanged.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	rec, err := a.session.SignIn(ctx, email, string(password))
	if err != nil {
		if services.IsAuthErr(err) {
			printlnFn("Invalid email or password")
			return err
		}
		a.log.Error(ctx, "sign-in failed", "error", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Signed in as %s", rec.Username))
	return nil
}

// Logout signs out and removes the persisted session marker.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.SignOut(ctx); err != nil {
		a.log.Error(ctx, "sign-out failed", "error", err.Error())
		return err
	}
	printlnFn("Signed out")
	return nil
}

// Whoami prints the signed-in account.
func (a *App) Whoami(ctx context.Context) error {
	cur := a.session.Current()
	if cur == nil {
		printlnFn("Not signed in")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s> (id %d)", cur.Username, cur.Email, cur.ID))
	return nil
}

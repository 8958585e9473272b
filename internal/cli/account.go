package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/dashvault/internal/app/models"
	"github.com/dmitrijs2005/dashvault/internal/common"
)

// Account updates the signed-in account. Every field is prompted for; a
// field left empty is kept as it is. Pressing Enter on all three prompts
// changes nothing.
func (a *App) Account(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Sign in first")
		return common.ErrNoSession
	}

	username, err := getSimpleText(a.reader, "New username (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "New email (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	var patch models.UserPatch
	if username != "" {
		patch.Username = &username
	}
	if email != "" {
		patch.Email = &email
	}
	if len(password) > 0 {
		pw := string(password)
		patch.Password = &pw
	}

	if patch.IsZero() {
		printlnFn("Nothing to change")
		return nil
	}

	rec, err := a.session.UpdateAccount(ctx, patch)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			printlnFn("An account with this email already exists")
			return err
		}
		a.log.Error(ctx, "account update failed", "error", err.Error())
		return err
	}

	printlnFn("Account updated:", rec.Username, rec.Email)
	return nil
}

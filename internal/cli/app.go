package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/dmitrijs2005/dashvault/internal/app/config"
	"github.com/dmitrijs2005/dashvault/internal/app/services"
	"github.com/dmitrijs2005/dashvault/internal/app/storage"
	"github.com/dmitrijs2005/dashvault/internal/logging"
)

// App ties the services together behind the interactive shell.
type App struct {
	config   *config.Config
	db       *sql.DB
	accounts *services.AccountService
	session  *services.SessionManager
	blog     *services.BlogService
	prefs    *services.PrefsService
	log      logging.Logger
	reader   *bufio.Reader

	section string
}

// NewApp opens the database, migrates it, and wires up the services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err.Error())
		return nil, err
	}

	accounts := services.NewAccountService(db, log)

	return &App{
		config:   c,
		db:       db,
		accounts: accounts,
		session:  services.NewSessionManager(db, accounts, log),
		blog:     services.NewBlogService(db, log),
		prefs:    services.NewPrefsService(db),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == services.StateAuthenticated
}

// getStatus renders the prompt decoration: the signed-in username and the
// selected dashboard section, when known.
func (a *App) getStatus() string {
	s := ""
	if cur := a.session.Current(); cur != nil {
		s = cur.Username
	}
	if a.section != "" {
		if s != "" {
			s += " "
		}
		s += a.section
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

// Run restores the previous session and preferences, then hands control to
// the shell until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if rec, err := a.session.Restore(ctx); err != nil {
		a.log.Error(ctx, "session restore failed", "error", err.Error())
	} else if rec != nil {
		printlnFn("Welcome back,", rec.Username)
	}

	if section, err := a.prefs.SelectedMenuItem(ctx, "dashboard"); err == nil {
		a.section = section
	}

	printlnFn("dashvault CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

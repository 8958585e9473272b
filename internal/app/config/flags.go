package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/dashvault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the database file (default from Config)
//	-e string   directory for exported files (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the database file")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "directory for exported files")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

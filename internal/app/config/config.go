package config

// Config holds runtime settings for the dashvault CLI.
//
// Fields:
//   - DatabasePath: path of the embedded SQLite database file.
//   - ExportDir: directory the blog export file is written into.
type Config struct {
	DatabasePath string
	ExportDir    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "dashvault.db"
	c.ExportDir = "."
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

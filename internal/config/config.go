package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where commands look for the workspace config.
const DefaultPath = "stakeledger.yaml"

// Environment overrides, read after an optional .env file is loaded.
const (
	EnvConfig   = "STAKELEDGER_CONFIG"
	EnvLogLevel = "STAKELEDGER_LOG_LEVEL"
	EnvSeedDir  = "STAKELEDGER_SEED_DIR"
)

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config represents the top-level stakeledger.yaml configuration.
type Config struct {
	Workspace  WorkspaceConfig  `yaml:"workspace"`
	Pagination PaginationConfig `yaml:"pagination"`
	Categories CategoriesConfig `yaml:"categories"`
	Projects   []string         `yaml:"projects"`
	Log        LogConfig        `yaml:"log"`
	Git        GitConfig        `yaml:"git"`
}

// WorkspaceConfig names the workspace and where its seed data lives.
type WorkspaceConfig struct {
	Name    string `yaml:"name"`
	SeedDir string `yaml:"seed_dir"` // relative to the config file
}

// PaginationConfig sets page sizes per view.
type PaginationConfig struct {
	Stakeholders int `yaml:"stakeholders"`
	Projects     int `yaml:"projects"`
	Reports      int `yaml:"reports"`
	Transactions int `yaml:"transactions"`
	MaxButtons   int `yaml:"max_buttons"`
}

// CategoriesConfig lists the categories offered when recording transactions.
type CategoriesConfig struct {
	Income  []string `yaml:"income"`
	Expense []string `yaml:"expense"`
}

// LogConfig controls the zerolog logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

// GitConfig controls the optional git repository created by init.
type GitConfig struct {
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a stakeledger.yaml file from disk. Fields missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the dashboard's stock settings.
func Default(name string) *Config {
	return &Config{
		Workspace: WorkspaceConfig{
			Name:    name,
			SeedDir: "seed",
		},
		Pagination: PaginationConfig{
			Stakeholders: 5,
			Projects:     5,
			Reports:      5,
			Transactions: 5,
			MaxButtons:   5,
		},
		Categories: CategoriesConfig{
			Income:  []string{"Salary", "Freelance", "Investment", "Gift", "Other"},
			Expense: []string{"Food", "Transport", "Housing", "Entertainment", "Utilities", "Other"},
		},
		Projects: []string{"Project A", "Project B", "Project C", "Personal"},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Git: GitConfig{
			AuthorName:  "Stakeledger",
			AuthorEmail: "stakeledger@localhost",
		},
	}
}

// Validate rejects non-positive page sizes and unknown log formats.
func (c *Config) Validate() error {
	sizes := []struct {
		name string
		v    int
	}{
		{"pagination.stakeholders", c.Pagination.Stakeholders},
		{"pagination.projects", c.Pagination.Projects},
		{"pagination.reports", c.Pagination.Reports},
		{"pagination.transactions", c.Pagination.Transactions},
	}
	for _, s := range sizes {
		if s.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, s.name, s.v)
		}
	}
	if c.Pagination.MaxButtons < 0 {
		return fmt.Errorf("%w: pagination.max_buttons must not be negative", ErrInvalid)
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// LoadEnv loads an optional .env file and returns the config path to use:
// explicit wins over STAKELEDGER_CONFIG, which wins over DefaultPath.
func LoadEnv(explicit string) string {
	_ = godotenv.Load()
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return DefaultPath
}

// ApplyEnv overrides config fields from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvSeedDir); v != "" {
		c.Workspace.SeedDir = v
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/hyperknf/HydroScript/internal/parser"
)

// FileName is looked up in the working directory when no path is given.
const FileName = ".hydroscript.toml"

// EnvVar overrides the lookup location.
const EnvVar = "HYDROSCRIPT_CONFIG"

// Config holds the complete toolchain configuration
type Config struct {
	Parser ParserConfig `toml:"parser"`
	Output OutputConfig `toml:"output"`
	LSP    LSPConfig    `toml:"lsp"`
}

// ParserConfig holds parser limits
type ParserConfig struct {
	MaxDepth int `toml:"max_depth"`
}

// OutputConfig holds CLI output settings
type OutputConfig struct {
	Format string `toml:"format"` // text, json or yaml
	Color  bool   `toml:"color"`
}

// LSPConfig holds language server settings
type LSPConfig struct {
	LogLevel int `toml:"log_level"` // commonlog verbosity
}

var formats = map[string]bool{"text": true, "json": true, "yaml": true}

func Default() Config {
	return Config{
		Parser: ParserConfig{MaxDepth: parser.DefaultMaxDepth},
		Output: OutputConfig{Format: "text", Color: true},
		LSP:    LSPConfig{LogLevel: 1},
	}
}

// Load reads a TOML file on top of the defaults. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Resolve loads path when set, otherwise $HYDROSCRIPT_CONFIG, otherwise
// .hydroscript.toml in dir. With nothing found it returns the defaults.
func Resolve(path, dir string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	if env := os.Getenv(EnvVar); env != "" {
		return Load(env)
	}

	local := filepath.Join(dir, FileName)
	if _, err := os.Stat(local); err == nil {
		return Load(local)
	}

	cfg := Default()
	return &cfg, nil
}

func (c *Config) Validate() error {
	if !formats[c.Output.Format] {
		return fmt.Errorf("output format %q is not one of text, json, yaml", c.Output.Format)
	}
	if c.Parser.MaxDepth < 0 {
		return fmt.Errorf("parser max_depth must not be negative, got %d", c.Parser.MaxDepth)
	}
	return nil
}

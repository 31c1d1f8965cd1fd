// Package config loads the trainer configuration from words.yaml.
//
// The trainer is menu-driven: it takes no command-line flags and reads no
// environment variables, so the YAML file is the only configuration source.
// A missing file simply means the defaults apply.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultPath is where Load looks for the configuration file.
const DefaultPath = "words.yaml"

// Config holds every tunable of the trainer.
type Config struct {
	// StorePath is the JSON file holding the card collection.
	StorePath string `koanf:"store_path" validate:"required"`
	// JournalPath is the SQLite review journal. Empty disables the journal.
	JournalPath string `koanf:"journal_path"`
	// ImportPath is the default offered by the import prompt.
	ImportPath string `koanf:"import_path" validate:"required"`
	// ReposDir caches cloned git import sources.
	ReposDir string `koanf:"repos_dir" validate:"required"`
	// BatchSize is the number of reviews between continue prompts.
	BatchSize int `koanf:"batch_size" validate:"min=1"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		StorePath:   "flashcards.json",
		JournalPath: "reviews.db",
		ImportPath:  "flashcards.csv",
		ReposDir:    "repos",
		BatchSize:   5,
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. A missing file is not an error; a malformed file or an invalid
// value is.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

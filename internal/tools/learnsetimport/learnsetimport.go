// Package learnsetimport loads learnset entries from YAML into the learnset
// database.
package learnsetimport

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	platformcmd "github.com/louisbranch/legality/internal/platform/cmd"
	apperrors "github.com/louisbranch/legality/internal/platform/errors"
	"github.com/louisbranch/legality/internal/platform/i18n/catalog"
	"github.com/louisbranch/legality/internal/services/legality/learnset"
	"github.com/louisbranch/legality/internal/services/legality/storage"
	"github.com/louisbranch/legality/internal/services/legality/storage/sqlite"
)

// Config holds learnset import configuration.
type Config struct {
	InputPath string
	DBPath    string        `env:"LEGALITY_LEARNSET_DB_PATH" envDefault:"data/learnset.db"`
	Locale    string        `env:"LEGALITY_LOCALE" envDefault:"en-US"`
	Timeout   time.Duration `env:"LEGALITY_CHECK_TIMEOUT" envDefault:"30s"`
	DryRun    bool
}

type entriesFile struct {
	Entries []entryDoc `yaml:"entries"`
}

type entryDoc struct {
	Species uint16 `yaml:"species"`
	Form    uint8  `yaml:"form"`
	Move    uint16 `yaml:"move"`
	Group   string `yaml:"group"`
	Method  string `yaml:"method"`
	Level   uint8  `yaml:"level"`
}

// ParseConfig loads env defaults and parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.InputPath, "file", "", "path to learnset entries (YAML)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to learnset sqlite database (default: LEGALITY_LEARNSET_DB_PATH or data/learnset.db)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "summary locale")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate entries without writing")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run validates the input file and writes its entries to the store.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if strings.TrimSpace(cfg.InputPath) == "" {
		return errors.New("-file is required")
	}

	data, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("read learnset file: %w", err)
	}
	records, err := Decode(data)
	if err != nil {
		return err
	}

	p := catalog.Default().Printer(cfg.Locale)
	if cfg.DryRun {
		_, err := fmt.Fprintln(out, p.Sprintf("legality.import.dry_run", len(records)))
		return err
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create learnset dir: %w", err)
		}
	}
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open learnset store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			fmt.Fprintf(errOut, "Error: close learnset store: %v\n", closeErr)
		}
	}()

	if err := store.PutLearnsetEntries(ctx, records); err != nil {
		return fmt.Errorf("put learnset entries: %w", err)
	}
	_, err = fmt.Fprintln(out, p.Sprintf("legality.import.summary", len(records), cfg.DBPath))
	return err
}

// Decode parses and validates a learnset YAML document.
func Decode(data []byte) ([]storage.LearnsetEntry, error) {
	var doc entriesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, invalid(err.Error(), err)
	}
	if len(doc.Entries) == 0 {
		return nil, invalid("no entries", nil)
	}

	records := make([]storage.LearnsetEntry, 0, len(doc.Entries))
	for i, item := range doc.Entries {
		if item.Species == 0 || item.Move == 0 {
			return nil, invalid(fmt.Sprintf("entry %d: species and move are required", i+1), nil)
		}
		entry, err := learnset.FromRecord(storage.LearnsetEntry{
			Species: item.Species,
			Form:    item.Form,
			Move:    item.Move,
			Group:   item.Group,
			Method:  item.Method,
			Level:   item.Level,
		})
		if err != nil {
			return nil, invalid(fmt.Sprintf("entry %d: %v", i+1, err), err)
		}
		records = append(records, entry.ToRecord())
	}
	return records, nil
}

func invalid(reason string, cause error) *apperrors.Error {
	return apperrors.WrapWithMetadata(apperrors.CodeLearnsetInvalid, reason, map[string]string{"Reason": reason}, cause)
}

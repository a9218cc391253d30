// Package movecheck implements the move evolution check command.
package movecheck

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel"

	platformcmd "github.com/louisbranch/legality/internal/platform/cmd"
	apperrors "github.com/louisbranch/legality/internal/platform/errors"
	"github.com/louisbranch/legality/internal/services/legality/app"
	"github.com/louisbranch/legality/internal/services/legality/domain/moveevo"
	"github.com/louisbranch/legality/internal/services/legality/learnset"
	"github.com/louisbranch/legality/internal/services/legality/storage"
	"github.com/louisbranch/legality/internal/services/legality/storage/sqlite"
)

const tracerName = "github.com/louisbranch/legality/internal/tools/movecheck"

// Config holds movecheck command configuration.
type Config struct {
	FixturePath string
	DBPath      string        `env:"LEGALITY_LEARNSET_DB_PATH" envDefault:"data/learnset.db"`
	Locale      string        `env:"LEGALITY_LOCALE" envDefault:"en-US"`
	Timeout     time.Duration `env:"LEGALITY_CHECK_TIMEOUT" envDefault:"30s"`
	JSONOutput  bool
}

// ParseConfig loads env defaults and parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.FixturePath, "fixture", "", "path to the creature fixture (YAML)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to learnset sqlite database (default: LEGALITY_LEARNSET_DB_PATH or data/learnset.db)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "report locale")
	fs.BoolVar(&cfg.JSONOutput, "json", false, "output a JSON report")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run checks the fixture and writes a report to out. A failed check returns
// the legality error after the report is written.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if strings.TrimSpace(cfg.FixturePath) == "" {
		return errors.New("-fixture is required")
	}

	fixture, err := LoadFixture(cfg.FixturePath)
	if err != nil {
		return err
	}
	table, err := loadTable(ctx, cfg.DBPath, errOut)
	if err != nil {
		return err
	}

	checker := app.NewChecker(moveevo.NewValidator(table, learnset.Resolver{}), otel.Tracer(tracerName))
	result := checker.Check(ctx, fixture.Creature, fixture.Evolution)

	if cfg.JSONOutput {
		err = writeJSONReport(out, cfg.Locale, fixture, result)
	} else {
		err = writeTextReport(out, cfg.Locale, fixture, result)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if !result.Valid {
		return result.Err
	}
	return nil
}

// ErrorMessage renders err for the command's stderr. Coded errors are
// localized; other errors keep their message.
func ErrorMessage(err error, locale string) string {
	if apperrors.GetCode(err) == apperrors.CodeUnknown {
		return err.Error()
	}
	return apperrors.Localize(err, locale)
}

func loadTable(ctx context.Context, path string, errOut io.Writer) (*learnset.Table, error) {
	unavailable := func(cause error) error {
		return apperrors.WrapWithMetadata(apperrors.CodeLearnsetUnavailable, "load learnset", map[string]string{"Path": path}, cause)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, unavailable(err)
	}

	store, err := sqlite.Open(path)
	if err != nil {
		return nil, unavailable(err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			fmt.Fprintf(errOut, "Error: close learnset store: %v\n", closeErr)
		}
	}()

	table, err := learnset.Load(ctx, store)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, unavailable(err)
		}
		return nil, apperrors.WrapWithMetadata(apperrors.CodeLearnsetInvalid, "load learnset", map[string]string{"Reason": err.Error()}, err)
	}
	return table, nil
}

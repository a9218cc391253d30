// Package main imports learnset entries into the learnset database.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	platformcmd "github.com/louisbranch/legality/internal/platform/cmd"
	"github.com/louisbranch/legality/internal/platform/config"
	"github.com/louisbranch/legality/internal/tools/learnsetimport"
)

func main() {
	cfg, err := learnsetimport.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if err := platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceLearnsetImport, func(ctx context.Context) error {
		return learnsetimport.Run(ctx, cfg, os.Stdout, os.Stderr)
	}); err != nil {
		config.Exitf("Error: %v", err)
	}
}

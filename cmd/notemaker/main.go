// Command notemaker turns a list of words and phrases into Anki cloze notes
// built from Reverso Context usage examples.
//
//	notemaker -s cs [-t en] [-q queries.txt] [-o reverso.csv] [--prefer-short] [--keep-punctuation]
//
// Notes already present in the output are skipped, so an interrupted run can
// simply be restarted.
//
// Exit codes: 0 = success, 1 = run failed, 2 = bad configuration.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/reverso-notes/internal/app"
	"github.com/heartmarshall/reverso-notes/internal/config"
)

func main() {
	flags, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load(flags.configPath, flags.apply)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := app.Run(ctx, cfg, logger)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("interrupted, written notes are kept", slog.Int("written", result.Written))
		} else {
			logger.Error("notemaker failed", slog.String("error", err.Error()))
		}
		stop()
		os.Exit(1)
	}

	fmt.Printf("%d notes written, %d skipped, %d not found, %d failed\n",
		result.Written, result.Skipped, result.Missed, result.Failed)
}

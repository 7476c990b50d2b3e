package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/reverso-notes/internal/adapter/csvsink"
	postgres "github.com/heartmarshall/reverso-notes/internal/adapter/postgres"
	"github.com/heartmarshall/reverso-notes/internal/adapter/postgres/note"
	"github.com/heartmarshall/reverso-notes/internal/adapter/provider/reverso"
	"github.com/heartmarshall/reverso-notes/internal/app/notemaker"
	"github.com/heartmarshall/reverso-notes/internal/config"
	"github.com/heartmarshall/reverso-notes/pkg/ctxutil"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/reverso-notes/internal/app.Version=1.0.0" ./cmd/notemaker
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for the startup log.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

// noteSink is an output that can also report what it already holds.
type noteSink interface {
	notemaker.NoteSink
	notemaker.KeySource
}

// Run wires the configured sink and the Reverso client into a pipeline and
// processes every query in the query file.
func Run(ctx context.Context, cfg *config.Config, log *slog.Logger) (notemaker.Result, error) {
	ctx = ctxutil.WithRunID(ctx, uuid.New())

	log.InfoContext(ctx, "starting notemaker",
		slog.String("version", BuildVersion()),
		slog.String("source_lang", cfg.Lang.Source),
		slog.String("target_lang", cfg.Lang.Target),
		slog.String("queries", cfg.Files.Queries),
		slog.String("sink", cfg.Sink.Kind),
	)

	queries, err := notemaker.ReadQueries(cfg.Files.Queries)
	if err != nil {
		return notemaker.Result{}, err
	}

	sink, closeSink, err := openSink(ctx, cfg, log)
	if err != nil {
		return notemaker.Result{}, err
	}
	defer closeSink()

	keys, err := sink.ExistingKeys(ctx)
	if err != nil {
		return notemaker.Result{}, fmt.Errorf("load existing notes: %w", err)
	}

	pipeline := notemaker.NewPipeline(log, reverso.NewClient(cfg.Remote, log), notemaker.NewSeenSet(keys), notemaker.OptionsFromConfig(cfg))
	return pipeline.Run(ctx, queries, sink)
}

func openSink(ctx context.Context, cfg *config.Config, log *slog.Logger) (noteSink, func(), error) {
	switch cfg.Sink.Kind {
	case config.SinkPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres sink: %w", err)
		}
		return note.New(pool, cfg.Lang.Source, cfg.Lang.Target), pool.Close, nil

	case config.SinkCSV:
		s, err := csvsink.Open(cfg.Files.Output, log)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := s.Close(); err != nil {
				log.ErrorContext(ctx, "close output", slog.String("path", cfg.Files.Output), slog.String("error", err.Error()))
			}
		}
		return s, closeFn, nil

	default:
		return nil, nil, fmt.Errorf("unknown sink kind %q", cfg.Sink.Kind)
	}
}

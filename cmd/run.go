package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/skillstars/internal/announce"
	"github.com/abhisek/skillstars/internal/app"
	"github.com/abhisek/skillstars/internal/config"
	"github.com/abhisek/skillstars/internal/flow"
	"github.com/abhisek/skillstars/internal/logging"
	"github.com/abhisek/skillstars/internal/progress"
	"github.com/abhisek/skillstars/internal/quiz"
	"github.com/abhisek/skillstars/internal/store"
)

// runtime bundles the dependencies every command shares.
type runtime struct {
	cfg     config.Config
	logger  zerolog.Logger
	repo    *progress.Repo
	closers []io.Closer
}

func (rt *runtime) Close() error {
	var errs []error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		errs = append(errs, rt.closers[i].Close())
	}
	return errors.Join(errs...)
}

// closerFunc adapts a func to io.Closer.
type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openRuntime loads config, opens the log and the progress backend. Without a
// log file, interactive runs discard logs and plain commands log to stderr.
func openRuntime(ctx context.Context, cmd *cobra.Command, interactive bool) (*runtime, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, logCloser, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if cfg.LogFile == "" && !interactive {
		lvl, _ := zerolog.ParseLevel(cfg.LogLevel)
		logger = logging.Console(cmd.ErrOrStderr(), lvl)
	}
	rt := &runtime{cfg: cfg, logger: logger, closers: []io.Closer{logCloser}}

	blobs, err := openBlobs(ctx, cfg, logger)
	if err != nil {
		rt.Close()
		return nil, err
	}
	if c, ok := blobs.(io.Closer); ok {
		rt.closers = append(rt.closers, c)
	}
	rt.repo = progress.NewRepo(blobs)
	return rt, nil
}

// openBlobs selects Redis when a URL is configured, SQLite otherwise.
func openBlobs(ctx context.Context, cfg config.Config, logger zerolog.Logger) (store.BlobStore, error) {
	if cfg.RedisURL != "" {
		client, err := store.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		logger.Info().Str("component", "store").Str("backend", "redis").Msg("progress store ready")
		return &redisBlobs{RedisBlobs: store.NewRedisBlobs(client, store.DefaultRedisPrefix), close: client.Close}, nil
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Info().Str("component", "store").Str("backend", "sqlite").Str("path", cfg.DBPath).Msg("progress store ready")
	return &sqliteBlobs{BlobStore: st.Blobs(), close: st.Close}, nil
}

type redisBlobs struct {
	*store.RedisBlobs
	close func() error
}

func (b *redisBlobs) Close() error { return b.close() }

type sqliteBlobs struct {
	store.BlobStore
	close func() error
}

func (b *sqliteBlobs) Close() error { return b.close() }

// runApp builds the engine and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := openRuntime(ctx, cmd, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	gen, seed, err := quiz.FromSeed(rt.cfg.Seed)
	if err != nil {
		return fmt.Errorf("seed quiz: %w", err)
	}

	caption := &announce.Caption{}
	announcers := announce.Multi{caption}
	if speech := announce.NewCommand(rt.cfg.SpeechCommand, rt.logger); speech != nil {
		announcers = append(announcers, speech)
		rt.closers = append(rt.closers, closerFunc(func() error {
			speech.Close()
			return nil
		}))
	}

	engine := flow.New(ctx, flow.Options{
		Repo:      rt.repo,
		Announcer: announcers,
		Quiz:      gen,
		TimeUnit:  rt.cfg.TimeUnit,
		Muted:     !rt.cfg.Sound,
		Logger:    rt.logger,
	})
	rt.logger.Info().
		Str("run_id", engine.RunID()).
		Uint64("seed", seed).
		Dur("time_unit", rt.cfg.TimeUnit).
		Msg("starting")

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{Engine: engine, Caption: caption, Splash: !noSplash})
}

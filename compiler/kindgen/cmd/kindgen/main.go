// kindgen generates the statement-kind declarations of sqlkind from a YAML
// configuration.
//
//	go run ./compiler/kindgen/cmd/kindgen -config kinds.yaml
//	go run ./compiler/kindgen/cmd/kindgen -config kinds.yaml -watch
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/sqlkind/compiler/kindgen"
)

func main() {
	var (
		config  = flag.String("config", "kinds.yaml", "path of the kinds configuration")
		watch   = flag.Bool("watch", false, "regenerate when the configuration changes")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := generate(logger, *config); err != nil && !*watch {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
	if !*watch {
		return
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := watchConfig(ctx, logger, *config); err != nil {
		logger.Error("watch failed", "error", err)
		os.Exit(1)
	}
}

func generate(logger *slog.Logger, path string) error {
	c, err := kindgen.Load(path)
	if err != nil {
		return err
	}
	if err := kindgen.WriteFile(c); err != nil {
		return err
	}
	logger.Info("generated", "output", c.Output, "kinds", len(c.Kinds))
	return nil
}

// watchConfig regenerates on every change of the configuration file until
// ctx is done. The directory is watched, since editors often replace files
// instead of writing them in place.
func watchConfig(ctx context.Context, logger *slog.Logger, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	logger.Info("watching", "config", abs)
	return watchLoop(ctx, logger, path, w.Events, w.Errors)
}

// watchLoop regenerates on every event that changes the configuration file
// at path, until ctx is done or the watcher channels are closed.
func watchLoop(ctx context.Context, logger *slog.Logger, path string, events <-chan fsnotify.Event, errs <-chan error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !configChanged(ev, abs) {
				continue
			}
			logger.Debug("config changed", "op", ev.Op.String())
			if err := generate(logger, path); err != nil {
				logger.Error("generation failed", "error", err)
			}
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

// configChanged reports if ev writes or creates the file abs.
func configChanged(ev fsnotify.Event, abs string) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return false
	}
	name, err := filepath.Abs(ev.Name)
	return err == nil && name == abs
}

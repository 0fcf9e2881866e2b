package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
)

// newLogger builds a logger writing to w at the named level
func newLogger(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// newFileLogger logs to a file so the console is left to the game. The
// returned function closes the file.
func newFileLogger(path, level, prefix string) (*log.Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}
	logger, err := newLogger(f, level, prefix)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return logger, func() {
		if err := f.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}, nil
}

// signalContext is cancelled on interrupt or terminate
func signalContext(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}

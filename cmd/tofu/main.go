// Package main is the entry point for tofu, a modal terminal hex editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/tofu/internal/buffer"
	"github.com/dshills/tofu/internal/logging"
	"github.com/dshills/tofu/internal/mode"
	"github.com/dshills/tofu/internal/render"
	"github.com/dshills/tofu/internal/renderer/backend"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	bytesPerLine int
	logLevel     string
	file         string
}

func run() int {
	opts := parseFlags()

	logger := logging.New(logging.Config{Level: logging.ParseLevel(opts.logLevel)})

	buffers, err := openBuffers(opts.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init terminal: %v\n", err)
		return 1
	}
	defer term.Shutdown()

	ringLog := logging.NewRingBuffer(200)
	term.OnResize(func(w, h int) {
		logger.Debug("resize to %dx%d", w, h)
	})

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	quit := make(chan struct{})
	go func() {
		select {
		case <-signals:
			close(quit)
		case <-quit:
		}
	}()

	view := render.New(term, opts.bytesPerLine)
	logger.SetOutput(ringLog)

	return eventLoop(view, buffers, logger, quit)
}

func openBuffers(path string) (*buffer.Collection, error) {
	if path == "" {
		return buffer.NewCollection(), nil
	}
	return buffer.NewCollectionFromPath(path)
}

func eventLoop(view *render.View, buffers *buffer.Collection, logger *logging.Logger, quit chan struct{}) int {
	var current mode.Mode = mode.NewNormal()

	for current.TakesInput() {
		select {
		case <-quit:
			return 0
		default:
		}

		if err := view.Draw(buffers, current); err != nil {
			logger.Error("draw failed: %v", err)
			return 1
		}

		ev := view.Backend.PollEvent()
		switch ev.Type {
		case backend.EventResize:
			continue
		case backend.EventKey:
			view.SetMessage("")
			kev, ok := translateKey(ev)
			if !ok {
				continue
			}
			t, handled := current.Transition(kev, buffers, view.BytesPerLine)
			if !handled {
				continue
			}
			applyTransition(view, &current, t)
		default:
			continue
		}
	}

	if buffers.AnyDirtyWithPath() {
		logger.Warn("exiting with unsaved changes")
	}
	return 0
}

func applyTransition(view *render.View, current *mode.Mode, t mode.Transition) {
	switch t.Kind {
	case mode.KindNewMode:
		*current = t.Mode
		view.SetMessage("")
	case mode.KindModeAndDirtyBytes:
		*current = t.Mode
		view.SetMessage("")
	case mode.KindModeAndInfo:
		*current = t.Mode
		view.SetMessage(t.Info)
	case mode.KindDirtyBytes, mode.KindNone:
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.IntVar(&opts.bytesPerLine, "bytes-per-line", 16, "bytes shown per row")
	flag.IntVar(&opts.bytesPerLine, "w", 16, "bytes shown per row (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "show version information")
	flag.BoolVar(&showVersion, "v", false, "show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "tofu - modal hex editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: tofu [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("tofu %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if opts.bytesPerLine < 1 {
		fmt.Fprintf(os.Stderr, "Error: -w/--bytes-per-line must be at least 1\n")
		os.Exit(1)
	}

	if flag.NArg() > 0 {
		opts.file = flag.Arg(0)
	}

	return opts
}

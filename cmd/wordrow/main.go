package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/lixenwraith/wordrow/audio"
	"github.com/lixenwraith/wordrow/game"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	opts, err := parseOptions(os.Args[1:], os.Getenv(defaultOptsEnv), os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wordrow: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	words, err := run(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wordrow: %v\n", err)
		os.Exit(1)
	}
	for _, w := range words {
		fmt.Println(w)
	}
}

// run owns the screen for the session and returns the submitted words
func run(opts options) (words []string, err error) {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return nil, errors.New("stdin and stdout must be a terminal")
	}

	var transcript io.Writer
	if opts.transcript != "" {
		f, err := os.OpenFile(opts.transcript, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, errors.Wrap(err, "open transcript")
		}
		defer f.Close()
		transcript = f
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}

	// Restore the terminal before anything is printed, including on panic
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mWORDROW CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	sound := audio.NewSoundManager()
	sound.SetMuted(opts.mute)
	if !opts.mute {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the row works without sound
			log.Printf("Audio initialization failed: %v", err)
		}
		defer sound.Cleanup()
	}

	cfg := game.Config{
		Lines:    opts.lines,
		Feedback: sound,
	}
	if transcript != nil {
		cfg.Submitter = game.NewTranscriptSubmitter(transcript)
	}

	g, err := game.New(screen, cfg)
	if err != nil {
		return nil, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := g.Run(ctx); err != nil && errors.Cause(err) != context.Canceled {
		return g.Board().Words(), err
	}
	return g.Board().Words(), nil
}

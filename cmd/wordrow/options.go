package main

import (
	"flag"
	"io"

	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"

	"github.com/lixenwraith/wordrow/board"
)

// defaultOptsEnv holds options applied before the command line
const defaultOptsEnv = "WORDROW_DEFAULT_OPTS"

type options struct {
	debug      bool
	mute       bool
	lines      int
	transcript string
}

// parseOptions layers the environment defaults under the real arguments,
// so later flags win
func parseOptions(args []string, envOpts string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("wordrow", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&opts.debug, "debug", false, "Write debug log to "+logDir+"/"+logFileName)
	fs.BoolVar(&opts.mute, "mute", false, "Disable sound feedback")
	fs.IntVar(&opts.lines, "lines", board.DefaultLines, "Number of guesses on the board")
	fs.StringVar(&opts.transcript, "transcript", "", "Append submitted words to this file")

	defaults, err := shellwords.Parse(envOpts)
	if err != nil {
		return opts, errors.Wrap(err, defaultOptsEnv)
	}

	all := append(defaults, args...)
	if err := fs.Parse(all); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, errors.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	if opts.lines < 1 {
		return opts, errors.Errorf("invalid -lines %d: must be at least 1", opts.lines)
	}
	return opts, nil
}

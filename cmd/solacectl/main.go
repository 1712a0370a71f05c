// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

type options struct {
	Debug   string `short:"d" long:"debuglevel" description:"logging level for all subsystems {trace, debug, info, warn, error, critical}" default:"info"`
	LogFile string `long:"logfile" description:"file to write rotated logs to; logging to a file is disabled if empty"`
}

// opts holds the parsed global options. It is populated by parser.Parse
// before any subcommand's Execute runs, since go-flags consumes the
// leading option group before dispatching to the matched command.
var opts = options{Debug: "info"}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "solacectl: "+format+"\n", args...)
	os.Exit(1)
}

// setupLogging applies opts.Debug/LogFile. Every subcommand's Execute
// calls this first, since it is the earliest point after global option
// parsing that a subcommand's own code runs.
func setupLogging() {
	if err := setLogLevels(opts.Debug); err != nil {
		fatalf("%v", err)
	}
	if opts.LogFile != "" {
		if err := initLogRotator(opts.LogFile); err != nil {
			fatalf("%v", err)
		}
	}
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] <checksum|difficulty|verify-proof> ..."

	addChecksumCommand(parser)
	addDifficultyCommand(parser)
	addVerifyProofCommand(parser)

	if _, err := parser.Parse(); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	closeLogRotator()
}

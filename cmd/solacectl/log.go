// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
	"github.com/solacechain/solacecore/bodyio"
	"github.com/solacechain/solacecore/chainwork"
	"github.com/solacechain/solacecore/validate"
)

// logRotator writes logged bytes to a rolling log file. It is nil until
// initLogRotator is called, and closed on program exit via
// closeLogRotator.
var logRotator *rotator.Rotator

// logWriter implements io.Writer and sends written data to both
// standard output and the log rotator.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

var backendLog = slog.NewBackend(logWriter{})

var (
	logBodyio     = backendLog.Logger("BODY")
	logChainWork  = backendLog.Logger("CWRK")
	logValidate   = backendLog.Logger("VLDT")
	logMain       = backendLog.Logger("MAIN")
)

func init() {
	bodyio.UseLogger(logBodyio)
	chainwork.UseLogger(logChainWork)
	validate.UseLogger(logValidate)
}

// initLogRotator opens a rolling log file at logFile, creating its
// parent directory if necessary, and directs backendLog's writer at it
// in addition to stdout.
func initLogRotator(logFile string) error {
	logDir := filepath.Dir(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}
	logRotator = r
	return nil
}

// closeLogRotator closes the log rotator, if one was opened.
func closeLogRotator() {
	if logRotator != nil {
		logRotator.Close()
	}
}

// setLogLevels sets every subsystem logger to the named level.
func setLogLevels(levelName string) error {
	level, ok := slog.LevelFromString(levelName)
	if !ok {
		return fmt.Errorf("unknown log level %q", levelName)
	}
	for _, l := range []slog.Logger{logBodyio, logChainWork, logValidate, logMain} {
		l.SetLevel(level)
	}
	return nil
}

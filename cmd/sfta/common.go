// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sfta-go/sfta/automaton"
	"github.com/sfta-go/sfta/internal/logging"
	"github.com/sfta-go/sfta/timbuk"
)

// Exit codes for the CLI surface: 0 success, 1 a negative but well-formed
// result (e.g. "not included"), 2 any parse error, 3 any misuse error.
const (
	exitOK       = 0
	exitNegative = 1
	exitParse    = 2
	exitMisuse   = 3
)

func newSink() logging.Sink {
	logger := logrus.New()
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logging.NewLogrusSink(logger)
}

func readingFlag() automaton.Reading {
	if bottomUp {
		return automaton.BottomUp
	}
	return automaton.TopDown
}

// parseFile opens path and reads it as Timbuk source into u, attaching sink
// to the resulting automaton.
func parseFile(path string, u *automaton.Universe, sink logging.Sink) (*automaton.Automaton, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return timbuk.Parse(f, u, readingFlag(), automaton.WithSink(sink))
}

// die reports err on standard error and exits with the code its kind maps
// to, without ever panicking out of main.
func die(err error) {
	fmt.Fprintln(os.Stderr, "sfta:", err)
	switch {
	case errors.Is(err, timbuk.ErrSyntax):
		os.Exit(exitParse)
	case errors.Is(err, automaton.ErrMisuse):
		os.Exit(exitMisuse)
	default:
		os.Exit(exitNegative)
	}
}

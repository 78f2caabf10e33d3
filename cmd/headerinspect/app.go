// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"

	"github.com/stacklok/headerinspect/config"
	"github.com/stacklok/headerinspect/env"
)

// Exit statuses.
const (
	exitOK        = 0
	exitViolation = 1
	exitUsage     = 2
)

const usage = `Usage: headerinspect <command> [flags]

Commands:
  check    validate "Name: value" header lines from a file or stdin
  serve    run a reverse proxy that inspects request headers

Run "headerinspect <command> -h" for the flags of a command.
`

type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func run(ctx context.Context, args []string, s streams, envReader env.Reader) int {
	if len(args) == 0 {
		_, _ = io.WriteString(s.err, usage)
		return exitUsage
	}

	switch args[0] {
	case "check":
		return runCheck(args[1:], s, envReader)
	case "serve":
		return runServe(ctx, args[1:], s, envReader)
	case "-h", "-help", "--help", "help":
		_, _ = io.WriteString(s.out, usage)
		return exitOK
	default:
		fmt.Fprintf(s.err, "headerinspect: unknown command %q\n\n%s", args[0], usage)
		return exitUsage
	}
}

// newFlagSet creates a flag set that reports errors instead of exiting.
func newFlagSet(name string, s streams) *flag.FlagSet {
	flags := flag.NewFlagSet("headerinspect "+name, flag.ContinueOnError)
	flags.SetOutput(s.err)
	return flags
}

// parseFlags parses args and maps the outcome to an exit status, or -1 to go on.
func parseFlags(flags *flag.FlagSet, args []string) int {
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(flags.Output(), "unexpected arguments: %v\n", flags.Args())
		return exitUsage
	}
	return -1
}

// isSet reports whether the flag called name was given on the command line,
// even when its value equals the default.
func isSet(flags *flag.FlagSet, name string) bool {
	set := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// loadConfig loads the file named by the -config flag, or the resolved
// default. A missing default file yields config.Default.
func loadConfig(path string, envReader env.Reader) (*config.Config, error) {
	explicit := path != ""
	if !explicit {
		path, explicit = config.Resolve(envReader)
	}

	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return config.Default(), nil
	}
	return cfg, err
}

// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/stacklok/headerinspect/config"
	"github.com/stacklok/headerinspect/env"
	"github.com/stacklok/headerinspect/inspect"
	"github.com/stacklok/headerinspect/internal/render"
	"github.com/stacklok/headerinspect/logging"
	httpval "github.com/stacklok/headerinspect/validation/http"
)

func runCheck(args []string, s streams, envReader env.Reader) int {
	flags := newFlagSet("check", s)
	configPath := flags.String("config", "", "configuration file (default $HEADERINSPECT_CONFIG or the XDG config path)")
	locationName := flags.String("location", "", "use the policy of the named location")
	path := flags.String("path", "/", "use the policy of the location matching this request path")
	file := flags.String("file", "", "read header lines from this file instead of stdin")
	logViolations := flags.Bool("log", false, "also log each violation as a structured record on stderr")
	if code := parseFlags(flags, args); code >= 0 {
		return code
	}

	if *locationName != "" && isSet(flags, "path") {
		fmt.Fprintln(s.err, "headerinspect check: -location and -path are mutually exclusive")
		return exitUsage
	}

	cfg, err := loadConfig(*configPath, envReader)
	if err != nil {
		fmt.Fprintf(s.err, "headerinspect check: %v\n", err)
		return exitUsage
	}

	p, err := checkPolicy(cfg, *locationName, *path)
	if err != nil {
		fmt.Fprintf(s.err, "headerinspect check: %v\n", err)
		return exitUsage
	}
	p.LogViolations = *logViolations

	in := s.in
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			fmt.Fprintf(s.err, "headerinspect check: %v\n", err)
			return exitUsage
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	reporter := inspect.NewSlogReporter(logging.New(append(cfg.LoggingOptions(), logging.WithOutput(s.err))...))
	c := &checker{
		inspector: inspect.New(inspect.WithReporter(reporter)),
		policy:    p,
		printer:   render.New(s.out),
	}
	if err := c.check(in); err != nil {
		fmt.Fprintf(s.err, "headerinspect check: %v\n", err)
		return exitUsage
	}
	if c.malformed > 0 || c.invalid > 0 {
		return exitViolation
	}
	return exitOK
}

// checkPolicy selects the policy to check with. Inspection is forced on and
// blocking off, so every line gets a verdict.
func checkPolicy(cfg *config.Config, locationName, path string) (inspect.Policy, error) {
	p := cfg.PolicyFor(path)
	if locationName != "" {
		loc, err := cfg.Location(locationName)
		if err != nil {
			return inspect.Policy{}, err
		}
		p = loc.Policy()
	}
	p.Inspect = true
	p.BlockViolations = false
	p.LogUninspected = false
	return p, nil
}

type checker struct {
	inspector *inspect.Inspector
	policy    inspect.Policy
	printer   *render.Printer

	inspected, malformed, invalid int
}

func (c *checker) check(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	number := 0
	for scanner.Scan() {
		number++
		line := scanner.Text()
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if err := c.printer.Print(c.verdict(number, line)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read header lines: %w", err)
	}
	return c.printer.Summary(c.inspected, c.malformed, c.invalid)
}

func (c *checker) verdict(number int, line string) render.Line {
	name, value, err := httpval.SplitFieldLine(line)
	if err != nil {
		c.invalid++
		return render.Line{Status: render.StatusInvalid, Number: number, Reason: err.Error()}
	}

	l := render.Line{Number: number, Name: name, Value: []byte(value)}
	res := c.inspector.Inspect(context.Background(), c.policy, []inspect.Field{{Name: name, Value: l.Value}})
	switch {
	case res.Inspected == 0:
		l.Status = render.StatusUninspected
	case len(res.Violations) > 0:
		c.inspected++
		c.malformed++
		v := res.Violations[0]
		l.Status = render.StatusMalformed
		l.Reason = v.Reason()
		l.Offset = v.Offset
	default:
		c.inspected++
		l.Status = render.StatusOK
	}
	return l
}

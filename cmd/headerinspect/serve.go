// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/go-logr/logr"
	"github.com/valyala/fasthttp"

	"github.com/stacklok/headerinspect/config"
	"github.com/stacklok/headerinspect/env"
	"github.com/stacklok/headerinspect/inspect"
	"github.com/stacklok/headerinspect/logger"
	"github.com/stacklok/headerinspect/logging"
	"github.com/stacklok/headerinspect/middleware"
	"github.com/stacklok/headerinspect/recovery"
	"github.com/stacklok/headerinspect/rule"
	httpval "github.com/stacklok/headerinspect/validation/http"
)

const (
	engineNetHTTP  = "net/http"
	engineFastHTTP = "fasthttp"

	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

func runServe(ctx context.Context, args []string, s streams, envReader env.Reader) int {
	flags := newFlagSet("serve", s)
	configPath := flags.String("config", "", "configuration file (default $HEADERINSPECT_CONFIG or the XDG config path)")
	listen := flags.String("listen", ":8080", "address to listen on")
	upstream := flags.String("upstream", "", "URL to proxy accepted requests to (default: answer 200 OK)")
	engine := flags.String("engine", engineNetHTTP, "HTTP server implementation: net/http or fasthttp")
	debug := flags.Bool("debug", false, "enable debug logging")
	if code := parseFlags(flags, args); code >= 0 {
		return code
	}

	if err := logger.Initialize(envReader, logger.DebugFlag(*debug)); err != nil {
		fmt.Fprintf(s.err, "headerinspect serve: %v\n", err)
		return exitUsage
	}
	defer logger.Sync()

	cfg, err := loadConfig(*configPath, envReader)
	if err != nil {
		logConfigError(err)
		return exitUsage
	}
	logger.Debugw("configuration loaded",
		"locations", len(cfg.Locations),
		"inspect", cfg.DefaultPolicy().Inspect,
		"range_max_bytesets", cfg.DefaultPolicy().RangeMaxByteSets)
	if !cfg.DefaultPolicy().Inspect && len(cfg.Locations) == 0 {
		logger.Warnw("inspection is off for every request; set defaults.inspect in the configuration")
	}

	var target *url.URL
	if *upstream != "" {
		if target, err = httpval.ValidateUpstreamURL(*upstream); err != nil {
			logger.Errorw("invalid upstream", "error", err)
			return exitUsage
		}
	}

	ln, err := net.Listen("tcp", *listen)
	if err != nil {
		logger.Errorw("failed to listen", "address", *listen, "error", err)
		return exitUsage
	}

	log := logger.NewLogr()
	guard := newGuard(cfg, s.err, log)
	logger.Infow("serving", "address", ln.Addr().String(), "engine", *engine, "upstream", *upstream)

	switch *engine {
	case engineNetHTTP:
		err = serveNetHTTP(ctx, ln, netHTTPHandler(guard, target, log), log)
	case engineFastHTTP:
		err = serveFastHTTP(ctx, ln, fastHTTPHandler(guard, target, log), log)
	default:
		_ = ln.Close()
		logger.Errorw("unknown engine", "engine", *engine)
		return exitUsage
	}
	if err != nil {
		logger.Errorw("server failed", "error", err)
		return exitViolation
	}
	return exitOK
}

// logConfigError reports a configuration that failed to load. A block_when
// rule that does not compile gets one line per issue.
func logConfigError(err error) {
	if d, ok := rule.DiagnosticsOf(err); ok {
		logger.Errorw("invalid block rule", "rule", d.Source, "issues", d.Messages())
	}
	logger.Errorw("failed to load configuration", "error", err)
}

// newGuard builds the inspection middleware. Violation records go to w in the
// format of the log section of cfg.
func newGuard(cfg *config.Config, w io.Writer, log logr.Logger) *middleware.Guard {
	diagnostics := logging.New(append(cfg.LoggingOptions(), logging.WithOutput(w))...)
	in := inspect.New(inspect.WithReporter(inspect.NewSlogReporter(diagnostics)))
	return middleware.New(in, cfg, middleware.WithLogger(log))
}

func netHTTPHandler(guard *middleware.Guard, target *url.URL, log logr.Logger) http.Handler {
	var backend http.Handler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "OK\n")
	})
	if target != nil {
		backend = &httputil.ReverseProxy{
			Rewrite: func(r *httputil.ProxyRequest) {
				r.SetURL(target)
				r.SetXForwarded()
			},
		}
	}
	return recovery.Middleware(log)(guard.Handler(backend))
}

func fastHTTPHandler(guard *middleware.Guard, target *url.URL, log logr.Logger) fasthttp.RequestHandler {
	backend := func(ctx *fasthttp.RequestCtx) {
		ctx.SetContentType("text/plain; charset=utf-8")
		ctx.SetBodyString("OK\n")
	}
	if target != nil {
		backend = fastProxy(target)
	}
	return recovery.FastHTTP(log)(guard.FastHTTP(backend))
}

// fastProxy forwards requests to target, keeping header names as received.
func fastProxy(target *url.URL) fasthttp.RequestHandler {
	client := &fasthttp.HostClient{
		Addr:                          hostPort(target),
		IsTLS:                         target.Scheme == "https",
		DisableHeaderNamesNormalizing: true,
		DisablePathNormalizing:        true,
	}
	prefix := []byte(target.EscapedPath())
	if len(prefix) > 0 && prefix[len(prefix)-1] == '/' {
		prefix = prefix[:len(prefix)-1]
	}

	return func(ctx *fasthttp.RequestCtx) {
		req := &ctx.Request
		if len(prefix) > 0 {
			req.URI().SetPathBytes(append(append([]byte(nil), prefix...), req.URI().PathOriginal()...))
		}
		req.Header.Del("Connection")
		req.Header.Add("X-Forwarded-For", ctx.RemoteIP().String())

		if err := client.Do(req, &ctx.Response); err != nil {
			ctx.ResetBody()
			ctx.Error(http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
			return
		}
		ctx.Response.Header.Del("Connection")
	}
}

func hostPort(u *url.URL) string {
	if u.Port() != "" {
		return u.Host
	}
	if u.Scheme == "https" {
		return net.JoinHostPort(u.Hostname(), "443")
	}
	return net.JoinHostPort(u.Hostname(), "80")
}

// serveNetHTTP serves h on ln until ctx is done, then shuts down gracefully.
func serveNetHTTP(ctx context.Context, ln net.Listener, h http.Handler, log logr.Logger) error {
	server := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// serveFastHTTP is serveNetHTTP for fasthttp.
func serveFastHTTP(ctx context.Context, ln net.Listener, h fasthttp.RequestHandler, log logr.Logger) error {
	server := &fasthttp.Server{
		Handler:                       h,
		Name:                          "headerinspect",
		ReadTimeout:                   readHeaderTimeout,
		DisableHeaderNamesNormalizing: true,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

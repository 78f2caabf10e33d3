// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging provides the [log/slog.Logger] factory used for header
inspection diagnostics.

# Defaults

  - Format: JSON ([FormatJSON]) via [log/slog.JSONHandler]
  - Level: INFO ([log/slog.LevelInfo])
  - Output: [os.Stderr]
  - Timestamps: [time.RFC3339]

# Basic Usage

	logger := logging.New()
	logger.Warn("malformed header", "value", []byte("bytes=500-0"))

# Configuration

	logger := logging.New(
		logging.WithFormat(logging.FormatText),
		logging.WithLevel(slog.LevelDebug),
	)

ParseFormat and ParseLevel turn command-line spellings into options.

# Header Values

Header values come from clients and may contain CR, LF or other control
bytes. Attributes holding a []byte are written through [EscapeBytes], so a
hostile value cannot start a new log line or forge fields in text output.
Log raw values as []byte, not string, to get this treatment.

# Handler Access

	base := logging.NewHandler(logging.WithLevel(slog.LevelDebug))
	logger := slog.New(&myMiddleware{Handler: base})
*/
package logging

// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package inspect

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks Reporter

import (
	"context"
	"log/slog"
)

// Reporter receives inspection diagnostics. Implementations must be safe for
// concurrent use.
type Reporter interface {
	// Violation is called for each malformed value when the policy logs violations.
	Violation(ctx context.Context, v *Violation)
	// Uninspected is called for each header outside the inspected set when the
	// policy logs uninspected headers.
	Uninspected(ctx context.Context, f Field)
}

type slogReporter struct {
	logger *slog.Logger
}

// NewSlogReporter returns a Reporter writing one record per diagnostic to logger.
// Violations are logged at warn level and uninspected headers at info level.
func NewSlogReporter(logger *slog.Logger) Reporter {
	return &slogReporter{logger: logger}
}

func (r *slogReporter) Violation(ctx context.Context, v *Violation) {
	r.logger.LogAttrs(ctx, slog.LevelWarn, "malformed header", slog.Any("violation", v))
}

func (r *slogReporter) Uninspected(ctx context.Context, f Field) {
	r.logger.LogAttrs(ctx, slog.LevelInfo, "uninspected header", slog.Any("field", f))
}

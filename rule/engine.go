// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package rule

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

const (
	// DefaultMaxExpressionLength is the maximum allowed length for a rule expression.
	DefaultMaxExpressionLength = 2048

	// DefaultCostLimit is the default runtime cost limit for one rule evaluation.
	DefaultCostLimit = 10000

	// violationVar is the single variable visible to rule expressions.
	violationVar = "violation"
)

// Engine compiles block rules. It is safe for concurrent use from multiple goroutines.
type Engine struct {
	envCache            *envCache
	maxExpressionLength int
	costLimit           uint64
}

// envCache holds a lazily-initialized CEL environment.
type envCache struct {
	once sync.Once
	env  *cel.Env
	err  error
}

// NewEngine creates an engine whose expressions see one variable, `violation`,
// a map with the keys documented on Subject.
func NewEngine() *Engine {
	return &Engine{
		envCache:            &envCache{},
		maxExpressionLength: DefaultMaxExpressionLength,
		costLimit:           DefaultCostLimit,
	}
}

// WithMaxExpressionLength sets the maximum allowed length for rule expressions.
func (e *Engine) WithMaxExpressionLength(maxLen int) *Engine {
	e.maxExpressionLength = maxLen
	return e
}

// WithCostLimit sets the runtime cost limit for rule evaluation.
func (e *Engine) WithCostLimit(limit uint64) *Engine {
	e.costLimit = limit
	return e
}

func (e *Engine) getEnv() (*cel.Env, error) {
	e.envCache.once.Do(func() {
		e.envCache.env, e.envCache.err = cel.NewEnv(
			cel.Variable(violationVar, cel.MapType(cel.StringType, cel.DynType)),
		)
	})
	return e.envCache.env, e.envCache.err
}

// Compile parses and type-checks expr and returns a Rule ready for evaluation.
//
// Returns an error wrapping ErrExpressionCheck if the expression is too long, a
// ParseError on syntax errors, or a CheckError on type errors, including an
// expression that does not yield a bool.
func (e *Engine) Compile(expr string) (*Rule, error) {
	env, ast, err := e.check(expr)
	if err != nil {
		return nil, err
	}

	program, err := env.Program(ast, cel.CostLimit(e.costLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create program for rule %q: %w", expr, err)
	}

	return &Rule{
		source:  expr,
		program: program,
	}, nil
}

// Check verifies expr without building a program.
func (e *Engine) Check(expr string) error {
	_, _, err := e.check(expr)
	return err
}

func (e *Engine) check(expr string) (*cel.Env, *cel.Ast, error) {
	if len(expr) > e.maxExpressionLength {
		return nil, nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrExpressionCheck, len(expr), e.maxExpressionLength)
	}

	env, err := e.getEnv()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get CEL environment: %w", err)
	}

	parsedAst, issues := env.Parse(expr)
	if issues.Err() != nil {
		return nil, nil, newParseError(expr, issues)
	}

	checkedAst, issues := env.Check(parsedAst)
	if issues.Err() != nil {
		return nil, nil, newCheckError(expr, issues)
	}

	// a map of dyn yields dyn for any field access, so only a literal
	// non-bool result can be caught here
	if t := checkedAst.OutputType(); !t.IsExactType(cel.BoolType) && !t.IsExactType(cel.DynType) {
		return nil, nil, fmt.Errorf("%w: rule %q yields %s, not bool",
			ErrExpressionCheck, expr, t)
	}

	return env, checkedAst, nil
}

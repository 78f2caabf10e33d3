// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package httperr provides errors that carry the HTTP status a handler should answer with.
package httperr

import (
	"errors"
	"net/http"

	"github.com/valyala/fasthttp"
)

// Coder is implemented by errors that know their HTTP status.
type Coder interface {
	HTTPCode() int
}

// CodedError attaches a status to an error it wraps.
type CodedError struct {
	err  error
	code int
}

func (e *CodedError) Error() string {
	return e.err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.err
}

// HTTPCode implements Coder.
func (e *CodedError) HTTPCode() int {
	return e.code
}

// WithCode wraps err with status code. A nil err stays nil.
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, code: code}
}

// Code returns the status of the first Coder in the chain of err: 200 for a
// nil err and 500 when no error in the chain has a status.
func Code(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var c Coder
	if errors.As(err, &c) {
		return c.HTTPCode()
	}
	return http.StatusInternalServerError
}

// Write answers with the status of err and its status text. The error message
// itself may quote request bytes and is never sent. A nil err writes nothing.
func Write(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	code := Code(err)
	http.Error(w, http.StatusText(code), code)
}

// WriteFastHTTP is Write for a fasthttp request.
func WriteFastHTTP(ctx *fasthttp.RequestCtx, err error) {
	if err == nil {
		return
	}
	code := Code(err)
	ctx.Error(http.StatusText(code), code)
}

// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package render prints header verdicts for the headerinspect command, with a
// caret under the first offending byte of a malformed value.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stacklok/headerinspect/logging"
)

// Status is the verdict shown for one input line.
type Status int

const (
	// StatusOK is a well-formed inspected header.
	StatusOK Status = iota
	// StatusMalformed is an inspected header with a malformed value.
	StatusMalformed
	// StatusUninspected is a header outside the inspected set.
	StatusUninspected
	// StatusInvalid is a line that is not a header field.
	StatusInvalid
)

var labels = [...]string{
	StatusOK:          "OK",
	StatusMalformed:   "MALFORMED",
	StatusUninspected: "UNINSPECTED",
	StatusInvalid:     "INVALID",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(labels) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return labels[s]
}

// labelWidth fits the longest label plus one space.
const labelWidth = 12

// Line is one verdict to print.
type Line struct {
	Status Status
	// Number is the 1-based input line number.
	Number int
	Name   string
	Value  []byte
	// Reason and Offset describe a malformed value. Reason also carries the
	// error of an invalid line.
	Reason string
	Offset int
}

// Printer writes verdict lines. Colors are used only when the writer is a
// terminal that supports them.
type Printer struct {
	w      io.Writer
	labels map[Status]lipgloss.Style
	name   lipgloss.Style
	caret  lipgloss.Style
	dim    lipgloss.Style
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	label := r.NewStyle().Bold(true).Width(labelWidth)
	return &Printer{
		w: w,
		labels: map[Status]lipgloss.Style{
			StatusOK:          label.Foreground(lipgloss.Color("46")),
			StatusMalformed:   label.Foreground(lipgloss.Color("196")),
			StatusUninspected: label.Foreground(lipgloss.Color("245")),
			StatusInvalid:     label.Foreground(lipgloss.Color("208")),
		},
		name:  r.NewStyle().Bold(true),
		caret: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		dim:   r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Print writes l, followed by a caret line when l is malformed.
func (p *Printer) Print(l Line) error {
	label := p.labels[l.Status].Render(l.Status.String())

	if l.Status == StatusInvalid {
		_, err := fmt.Fprintf(p.w, "%s%s\n", label, p.dim.Render(fmt.Sprintf("line %d: %s", l.Number, l.Reason)))
		return err
	}

	value := logging.EscapeBytes(l.Value)
	if _, err := fmt.Fprintf(p.w, "%s%s: %s\n", label, p.name.Render(l.Name), value); err != nil {
		return err
	}
	if l.Status != StatusMalformed {
		return nil
	}

	offset := min(max(l.Offset, 0), len(l.Value))
	column := labelWidth + len(l.Name) + len(": ") + lipgloss.Width(logging.EscapeBytes(l.Value[:offset]))
	_, err := fmt.Fprintf(p.w, "%s%s\n",
		strings.Repeat(" ", column),
		p.caret.Render(fmt.Sprintf("^ %s at offset %d", l.Reason, l.Offset)),
	)
	return err
}

// Summary writes the totals line.
func (p *Printer) Summary(inspected, malformed, invalid int) error {
	_, err := fmt.Fprintln(p.w, p.dim.Render(
		fmt.Sprintf("%d inspected, %d malformed, %d invalid", inspected, malformed, invalid)))
	return err
}

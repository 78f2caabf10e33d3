// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package grammar

// ValidateIfRange checks an If-Range header value, which is either an entity-tag
// or an HTTP-date. A leading `W/` or `"` selects the entity-tag grammar.
func ValidateIfRange(b []byte) error {
	if isEntityTagStart(b) {
		return ValidateEntityTag(b)
	}
	return ValidateHTTPDate(b)
}

func isEntityTagStart(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	return b[0] == '"' || (len(b) > 1 && b[0] == 'W' && b[1] == '/')
}

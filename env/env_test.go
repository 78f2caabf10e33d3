// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSReader(t *testing.T) { //nolint:paralleltest // Modifies environment variables
	const (
		setKey   = "HEADERINSPECT_TEST_SET"
		emptyKey = "HEADERINSPECT_TEST_EMPTY"
		unsetKey = "HEADERINSPECT_TEST_UNSET_12345"
	)
	t.Setenv(setKey, "/etc/headerinspect.yaml")
	t.Setenv(emptyKey, "")

	reader := &OSReader{}

	assert.Equal(t, "/etc/headerinspect.yaml", reader.Getenv(setKey))
	assert.Empty(t, reader.Getenv(unsetKey))

	v, ok := reader.LookupEnv(emptyKey)
	assert.True(t, ok, "a variable set to the empty string is set")
	assert.Empty(t, v)

	_, ok = reader.LookupEnv(unsetKey)
	assert.False(t, ok)
}

func TestMapReader(t *testing.T) {
	t.Parallel()

	reader := MapReader{"HEADERINSPECT_CONFIG": "/tmp/c.yaml", "EMPTY": ""}

	assert.Equal(t, "/tmp/c.yaml", reader.Getenv("HEADERINSPECT_CONFIG"))
	assert.Empty(t, reader.Getenv("MISSING"))

	_, ok := reader.LookupEnv("EMPTY")
	assert.True(t, ok)
	_, ok = reader.LookupEnv("MISSING")
	assert.False(t, ok)
}

func TestReader_InterfaceCompliance(t *testing.T) {
	t.Parallel()
	var _ Reader = &OSReader{}
	var _ Reader = MapReader{}
}

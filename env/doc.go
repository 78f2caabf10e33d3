// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, enabling dependency injection and testing isolation.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	path, ok := reader.LookupEnv("HEADERINSPECT_CONFIG")

MapReader serves a fixed set of variables, which suits command tests:

	reader := env.MapReader{"HEADERINSPECT_STRUCTURED_LOGS": "true"}

# Testing

The Reader interface allows injecting a mock in tests to avoid relying on
real environment variables. A generated mock is available in the mocks
sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().LookupEnv("HEADERINSPECT_CONFIG").Return("/tmp/config.yaml", true)

	result := myFunc(mock)

# Design

Production code accepts an env.Reader, while tests substitute the generated
mock or a MapReader.
*/
package env

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires configuration, logging, the vault and the fixture
// generator into the generate and inspect commands.
//
// Each Run* function takes the full argument list (program name first) and
// the output streams, and returns the process exit code, so the commands can
// be driven from tests without spawning a binary.
package app

const (
	// ExitOK is returned when the command completed.
	ExitOK = 0

	// ExitFailure is returned on usage errors and on any failure reported by
	// the vault or the generator.
	ExitFailure = 1
)

const (
	// MsgGenerateUsage is printed to stdout when generate receives the wrong
	// number of positional arguments. %s is the program name.
	MsgGenerateUsage = "%s <dbpath> <password>\n"

	// MsgInspectUsage is the inspect counterpart of MsgGenerateUsage.
	MsgInspectUsage = "%s [-search text] [-qr] <dbpath> <password>\n"

	// MsgNoCredentials is printed by inspect when nothing matched.
	MsgNoCredentials = "no wifi credentials found"

	// MsgBuildInfo is printed by -version.
	MsgBuildInfo = "Build version: %s\nBuild date: %s\nBuild commit: %s\n"
)

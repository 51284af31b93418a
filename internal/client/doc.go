// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the notes API.
//
// Each invocation runs one subcommand against the server through
// [adapter.NotesClient] and prints the result as indented JSON. A stale
// version on update is reported with a hint to fetch the note again; nothing
// is retried automatically.
package client

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive application runtime.
//
// It wires the terminal editor, the shared services, and the local preview
// server into a single process lifecycle.
package client

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The janus-sync Authors

// Package client implements the sync client runtime.
//
// It wires the workspace scan, the conflict engine and the terminal
// prompt channel into a single batch-upload run.
package client

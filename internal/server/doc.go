// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the festa HTTP server and its background
// workers.
//
// It handles startup, signal handling (SIGINT, SIGTERM, SIGQUIT) and
// graceful shutdown bounded by the configured shutdown timeout.
package server

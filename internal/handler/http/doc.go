// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http exposes the festa services over HTTP with a chi router.
//
// Every request body carries the caller's identity ({"nome", "telefone"}).
// Responses are JSON; errors are {"error": "<message>"} with Portuguese
// messages from package app.
package http

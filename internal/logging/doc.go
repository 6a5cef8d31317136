// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

// Package logging provides the zerolog-based structured logger used across Wayfinder.
//
// Initialize once at startup:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
// Then log with structured fields, always terminating the chain with Msg or Send:
//
//	logging.Info().Int("destinations", n).Msg("catalog loaded")
//	logging.Ctx(ctx).Debug().Str("session_id", id).Msg("selection updated")
//
// Request and correlation ids placed in the context by the HTTP middleware are
// added automatically by Ctx. SlogHandler bridges slog-only libraries such as
// sutureslog onto the same output.
package logging

// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

// Package logging provides centralized zerolog-based logging for EventScout.
//
// The scoring packages themselves are pure and log nothing; logging happens
// in the pipeline and command layers. A single global zerolog logger is
// configured once at startup and component loggers are derived from it:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	pipeLogger := logging.With().Str("component", "pipeline").Logger()
//
// Always terminate log chains with .Msg() or .Send(); a chain without a
// terminator is silently dropped by zerolog.
package logging

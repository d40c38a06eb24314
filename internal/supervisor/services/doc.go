// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

/*
Package services provides suture.Service wrappers for Scholarwise components.

Each wrapper translates a component lifecycle into suture's context-aware
Serve method and implements fmt.Stringer so that supervisor events name it.

# Available Services

HTTPServerService (api layer):
  - Runs ListenAndServe in a goroutine
  - Calls Shutdown with its own timeout when the context is canceled

MaintenanceService (data layer):
  - Runs the Badger value log GC on an interval
  - Refreshes the store_keys gauges after every run

ConfigWatchService (control layer):
  - Watches the YAML config file through koanf's file provider
  - Debounces change bursts and applies the recommendation section

# Return Values

Serve returns ctx.Err() after a requested shutdown. Any other error tells
the supervisor the service crashed and should be restarted with backoff.
*/
package services

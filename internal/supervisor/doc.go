// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

/*
Package supervisor provides process supervision for Scholarwise using suture v4.

Every long-running component runs as a suture.Service inside a three-layer
tree, so a crash is restarted with backoff and stays inside its layer:

	scholarwise
	├── data-layer
	│   └── MaintenanceService (Badger value log GC, key gauges)
	├── control-layer
	│   └── ConfigWatchService (only when a config file was loaded)
	└── api-layer
	    └── HTTPServerService

Supervisor events (start, stop, panic, backoff) are logged through
sutureslog. main passes a *slog.Logger built by logging.NewSlogLogger, so
these events end up in the same zerolog stream as everything else.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewMaintenanceService(db, services.MaintenanceConfig{}, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

# Shutdown

Canceling the context stops every service. A service that does not return
within ShutdownTimeout is abandoned and listed by UnstoppedServiceReport.
*/
package supervisor

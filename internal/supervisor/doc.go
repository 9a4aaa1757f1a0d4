// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

/*
Package supervisor runs the server's long-lived services under suture v4.

# Overview

	RootSupervisor ("movie-recommender")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   ├── CacheGCService (badger backend only)
	│   └── CacheStatsService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A maintenance job that keeps failing backs off on its own; the HTTP
server keeps running.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("info"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	tree.AddMaintenanceService(services.NewCacheGCService(db, 10*time.Minute, 0.5))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Failure Handling

Each failure increments a counter that decays over FailureDecay seconds.
Past FailureThreshold the supervisor waits FailureBackoff before the next
restart. A service returning nil is not restarted.

# What Is NOT Supervised

DuckDB and the recommendation engine are built once at startup and are
plain in-process values. The TMDB and LLM clients are guarded by circuit
breakers instead.

# Debugging Shutdown Issues

	report, err := tree.UnstoppedServiceReport()

lists services still running after ShutdownTimeout.
*/
package supervisor

// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package main is the entry point for the Wayfinder server.

Wayfinder ranks travel destinations against a visitor's selected tags,
travel style, season and trip length, and filters rental listings by price,
category, bedrooms, amenities and free text. Visitor selections can be held
server-side in sessions backed by memory, badger or redis.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("wayfinder")
	├── DataSupervisor ("data-layer")
	│   ├── Catalog refresh (cron, optional)
	│   └── Maintenance (cache purge, session sweep)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with config file and environment variables
 2. Logging: zerolog with JSON/console output modes
 3. Catalog: file, persisted badger snapshot, or built-in seed
 4. Recommendation engine and session store
 5. Supervisor tree and HTTP server

# Configuration

Configuration is loaded in layers (highest priority wins):
  - Environment variables (HTTP_PORT, CATALOG_PATH, SESSION_BACKEND, ...)
  - Config file (config.yaml, or the path in CONFIG_PATH)
  - Built-in defaults

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests within server.shutdown_timeout, then the catalog and session stores
are closed.

# Example Usage

	export CATALOG_PATH=/etc/wayfinder/catalog.yaml
	export SESSION_BACKEND=redis
	export SESSION_REDIS_URL=redis://localhost:6379/0
	./wayfinder-server
*/
package main

// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package config loads Wayfinder configuration with koanf.

# Configuration Sources

Layers are applied in order, later layers overriding earlier ones:

 1. Struct defaults (defaultConfig)
 2. YAML file: CONFIG_PATH, else config.yaml, config.yml, /etc/wayfinder/config.yaml
 3. Environment variables listed below

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default 0.0.0.0:8080)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
  - ENVIRONMENT: development, staging or production

Security:
  - CORS_ORIGINS: comma-separated origins (default none)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW (default 100 per 1m), DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT (json or console), LOG_CALLER

Catalog:
  - CATALOG_PATH: JSON or YAML catalog file (default: built-in seed)
  - CATALOG_STORE_ENABLED, CATALOG_STORE_PATH: badger snapshot of the last good catalog
  - CATALOG_REFRESH_SCHEDULE: cron spec (default "@every 5m", empty disables)

Recommendations:
  - RECOMMEND_WEIGHT_TAG, RECOMMEND_WEIGHT_STYLE, RECOMMEND_WEIGHT_SEASON, RECOMMEND_WEIGHT_DURATION
  - RECOMMEND_MAX_SCORE, RECOMMEND_TOP_N, RECOMMEND_MAX_REASONS, RECOMMEND_MAX_BEST_FOR
  - RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_TTL, RECOMMEND_CACHE_MAX_ENTRIES

Sessions:
  - SESSION_BACKEND: memory, badger or redis
  - SESSION_TTL, SESSION_CAPACITY, SESSION_BADGER_PATH, SESSION_REDIS_URL
  - SESSION_BREAKER_MAX_REQUESTS, SESSION_BREAKER_INTERVAL, SESSION_BREAKER_TIMEOUT,
    SESSION_BREAKER_FAILURE_THRESHOLD

Maintenance:
  - MAINTENANCE_INTERVAL: cache purge and session sweep period (default 1m)

# Example config.yaml

	server:
	  port: 8080
	catalog:
	  path: /data/catalog.yaml
	  refresh_schedule: "@every 10m"
	recommend:
	  weights:
	    tag: 30
	session:
	  backend: redis
	  redis_url: redis://localhost:6379/0
*/
package config

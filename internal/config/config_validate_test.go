// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"unknown environment", func(c *Config) { c.Server.Environment = "qa" }, "ENVIRONMENT"},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit zero but disabled", func(c *Config) {
			c.Security.RateLimitReqs = 0
			c.Security.RateLimitDisabled = true
		}, ""},
		{"wildcard cors in production", func(c *Config) {
			c.Server.Environment = "production"
			c.Security.CORSOrigins = []string{"*"}
		}, "CORS_ORIGINS"},
		{"wildcard cors in development", func(c *Config) { c.Security.CORSOrigins = []string{"*"} }, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"store without path", func(c *Config) {
			c.Catalog.StoreEnabled = true
			c.Catalog.StorePath = ""
		}, "CATALOG_STORE_PATH"},
		{"bad schedule", func(c *Config) { c.Catalog.RefreshSchedule = "every now and then" }, "CATALOG_REFRESH_SCHEDULE"},
		{"refresh disabled", func(c *Config) { c.Catalog.RefreshSchedule = "" }, ""},
		{"negative weight", func(c *Config) { c.Recommend.Weights.Tag = -1 }, "recommend"},
		{"unknown session backend", func(c *Config) { c.Session.Backend = "etcd" }, "session.backend"},
		{"zero maintenance interval", func(c *Config) { c.Maintenance.Interval = 0 }, "MAINTENANCE_INTERVAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %s", err, tt.wantErr)
			}
		})
	}
}

func TestServerConfig_Address(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if got := s.Address(); got != "127.0.0.1:8080" {
		t.Errorf("Address() = %q", got)
	}
}

func TestLoggingConfig_ToLogging(t *testing.T) {
	l := LoggingConfig{Level: "debug", Format: "console", Caller: true}.ToLogging()
	if l.Level != "debug" || l.Format != "console" || !l.Caller || !l.Timestamp {
		t.Errorf("ToLogging() = %+v", l)
	}
}

// Package config provides configuration management for the gateway's
// storage layer.
//
// Configuration is read from gateway.yml and can be overridden through
// GATEWAY_* environment variables. Each attribute remembers its source
// (default, file, or environment) for status output.
//
// # Key Configuration Options
//
//   - GATEWAY_DATABASE_URL: primary PostgreSQL connection URL
//   - GATEWAY_SQLITE_PATH: secondary tier database file
//   - GATEWAY_TOTAL_TIMEOUT_SECONDS: initialization sweep bound
package config

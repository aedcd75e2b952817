// Package main implements gatewayctl, the control CLI for the gateway's
// tiered storage layer.
//
// # Quick Start
//
//	# Run database migrations against the primary database
//	gatewayctl db migrate
//
//	# Inspect which tier would serve sessions right now
//	gatewayctl storage status
//
//	# Wait for the primary database to come up
//	gatewayctl storage wait
//
// # Environment Variables
//
//   - GATEWAY_DATABASE_URL: PostgreSQL connection string for the primary tier
//   - GATEWAY_SQLITE_PATH: file path of the secondary tier database
//   - GATEWAY_CONFIG_PATH: directory containing gateway.yml
package main

// Package timeouts defines the timeout constants shared by cashdesk services.
package timeouts

import "time"

// BackendRequest caps a single REST call from the dashboard to the backend.
const BackendRequest = 5 * time.Second

// HealthCheck caps one gRPC health probe.
const HealthCheck = time.Second

// HealthWait caps how long the health probe command waits for SERVING.
const HealthWait = 10 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long servers wait for in-flight requests during
// graceful shutdown.
const Shutdown = 5 * time.Second

// Package admin implements the operator dashboard for the cashdesk platform.
//
// It renders review queues, user records and reference data as paginated
// tables over the backend REST API, and journals every operator decision in
// a local SQLite store.
package admin

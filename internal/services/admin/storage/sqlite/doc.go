// Package sqlite provides SQLite-backed admin persistence.
//
// It stores the operator decision journal only; deposits, withdrawals and
// users remain owned by the backend.
package sqlite

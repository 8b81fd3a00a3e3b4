// Package storage defines persistence contracts for operator-facing admin
// artifacts.
//
// Domain records live in the remote backend; the admin process only keeps a
// journal of the decisions operators took through the dashboard.
package storage

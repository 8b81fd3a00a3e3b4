// Package backend is the REST client the admin dashboard uses to read and
// mutate deposits, withdrawals, users, KYC requests, coin values and bank
// details on the platform backend.
//
// List responses are normalized into datatable rows: the backend returns
// either bare arrays or objects wrapping the array under an envelope key,
// and some resources use both snake_case and camelCase field spellings.
package backend

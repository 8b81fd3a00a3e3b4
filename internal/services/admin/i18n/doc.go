// Package i18n resolves the admin UI language for a request and builds the
// message printers templates translate with.
package i18n

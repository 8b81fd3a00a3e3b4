// Package icons maps the admin surface's stable icon identifiers to Lucide
// icon names.
//
// Templates refer to icons by ID so the icon set can change without
// touching page code.
package icons

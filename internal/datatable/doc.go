// Package datatable renders arbitrary row records as a searchable, paginated
// HTML table.
//
// A Table is built per request from column descriptors and opaque rows. Its
// state (page, page size, search query) travels in the request query string
// under the table's parameter prefix, so every table instance on a page is
// independent and nothing persists between renders. Filtering, pagination and
// cell rendering are pure functions of the rows and the state.
package datatable

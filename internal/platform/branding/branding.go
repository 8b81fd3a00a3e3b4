// Package branding holds product naming shared by the admin surface.
package branding

// AppName is the product name shown in titles and the sidebar.
const AppName = "Cashdesk"

// PageTitle formats a browser title for a page.
func PageTitle(page string) string {
	if page == "" {
		return AppName
	}
	return page + " | " + AppName
}

package templates

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/cashdesk/internal/platform/branding"
	"github.com/louisbranch/cashdesk/internal/platform/icons"
	"github.com/louisbranch/cashdesk/internal/platform/markup"
	"github.com/louisbranch/cashdesk/internal/services/admin/routepath"
)

const (
	daisyUIStylesheet = "https://cdn.jsdelivr.net/npm/daisyui@5"
	tailwindScript    = "https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4"
	htmxScript        = "https://cdn.jsdelivr.net/npm/htmx.org@2.0.4/dist/htmx.min.js"
	lucideScript      = "https://cdn.jsdelivr.net/npm/lucide@0.468.0/dist/umd/lucide.min.js"
)

// NavItem is one sidebar entry.
type NavItem struct {
	Key  string
	URL  string
	Icon icons.ID
}

// Navigation lists the sidebar entries in display order.
func Navigation() []NavItem {
	return []NavItem{
		{Key: "nav.dashboard", URL: routepath.Root, Icon: icons.Dashboard},
		{Key: "nav.deposits", URL: routepath.Deposits, Icon: icons.Deposit},
		{Key: "nav.withdrawals", URL: routepath.Withdrawals, Icon: icons.Withdrawal},
		{Key: "nav.kyc", URL: routepath.KYC, Icon: icons.KYC},
		{Key: "nav.users", URL: routepath.Users, Icon: icons.Users},
		{Key: "nav.coins", URL: routepath.Coins, Icon: icons.Coins},
		{Key: "nav.bank_details", URL: routepath.BankDetails, Icon: icons.Bank},
		{Key: "nav.journal", URL: routepath.Journal, Icon: icons.Journal},
	}
}

// IsActive reports whether the nav item owns path.
func (n NavItem) IsActive(path string) bool {
	if n.URL == routepath.Root {
		return path == routepath.Root || path == ""
	}
	return path == n.URL || strings.HasPrefix(path, n.URL+"/")
}

// Layout renders the full admin document around content.
func Layout(page PageContext, title string, content templ.Component) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		lang := page.Lang
		if lang == "" {
			lang = "en-US"
		}
		w.Raw("<!doctype html>")
		w.Open("html", "lang", lang, "data-theme", "corporate")
		w.Open("head")
		w.Raw(`<meta charset="utf-8">`)
		w.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.Element("title", branding.PageTitle(title))
		w.Open("link", "rel", "stylesheet", "href", daisyUIStylesheet)
		w.Open("link", "rel", "stylesheet", "href", routepath.Stylesheet)
		w.Open("script", "src", tailwindScript)
		w.Close("script")
		w.Open("script", "src", htmxScript)
		w.Close("script")
		w.Open("script", "src", lucideScript)
		w.Close("script")
		w.Close("head")

		w.Open("body", "class", "min-h-screen bg-base-200")
		w.Open("div", "class", "drawer lg:drawer-open")
		w.Open("input", "id", "nav-drawer", "type", "checkbox", "class", "drawer-toggle")

		w.Open("div", "class", "drawer-content flex flex-col")
		renderNavbar(ctx, w, page)
		w.Open("main", "id", "main", "class", "flex flex-col gap-6 p-4 lg:p-8")
		w.Component(ctx, NoticeBanner(page.Notice))
		w.Component(ctx, content)
		w.Close("main")
		w.Close("div")

		renderSidebar(ctx, w, page)
		w.Close("div")
		// Icons swapped in by htmx are rendered after each settle.
		w.Raw(`<script>lucide.createIcons();document.body.addEventListener("htmx:afterSettle",function(){lucide.createIcons()});</script>`)
		w.Close("body")
		w.Close("html")
	})
}

func renderNavbar(ctx context.Context, w *markup.Writer, page PageContext) {
	w.Open("nav", "class", "navbar bg-base-100 shadow-sm")
	w.Open("div", "class", "flex-none lg:hidden")
	w.Open("label", "for", "nav-drawer", "class", "btn btn-square btn-ghost", "aria-label", T(page.Loc, "nav.open_menu"))
	w.Component(ctx, Icon(icons.Menu))
	w.Close("label")
	w.Close("div")
	w.Element("div", branding.AppName, "class", "flex-1 px-2 text-lg font-semibold lg:hidden")
	w.Open("div", "class", "flex-1 hidden lg:block")
	w.Close("div")

	w.Open("div", "class", "dropdown dropdown-end")
	w.Open("div", "tabindex", "0", "role", "button", "class", "btn btn-ghost btn-sm")
	w.Component(ctx, Icon(icons.Language))
	w.Text(activeLanguageLabel(page))
	w.Close("div")
	w.Open("ul", "tabindex", "0", "class", "menu dropdown-content z-10 w-48 rounded-box bg-base-100 p-2 shadow")
	for _, option := range LanguageOptions(page) {
		w.Open("li")
		class := ""
		if option.Active {
			class = "menu-active"
		}
		w.Element("a", option.Label, "href", option.URL, "class", class, "hreflang", option.Tag)
		w.Close("li")
	}
	w.Close("ul")
	w.Close("div")
	w.Close("nav")
}

func renderSidebar(ctx context.Context, w *markup.Writer, page PageContext) {
	w.Open("div", "class", "drawer-side z-20")
	w.Open("label", "for", "nav-drawer", "class", "drawer-overlay", "aria-label", T(page.Loc, "nav.close_menu"))
	w.Close("label")
	w.Open("aside", "class", "min-h-full w-64 bg-base-100")
	w.Element("div", branding.AppName, "class", "px-6 py-5 text-xl font-bold")
	w.Open("ul", "class", "menu w-full gap-1 px-2")
	for _, item := range Navigation() {
		w.Open("li")
		class := ""
		current := ""
		if item.IsActive(page.CurrentPath) {
			class = "menu-active"
			current = "page"
		}
		w.Open("a", "href", item.URL, "class", class, "aria-current", current)
		w.Component(ctx, Icon(item.Icon))
		w.Text(T(page.Loc, item.Key))
		w.Close("a")
		w.Close("li")
	}
	w.Close("ul")
	w.Close("aside")
	w.Close("div")
}

func activeLanguageLabel(page PageContext) string {
	for _, option := range LanguageOptions(page) {
		if option.Active {
			return option.Label
		}
	}
	return page.Lang
}

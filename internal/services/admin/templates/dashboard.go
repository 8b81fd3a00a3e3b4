package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/cashdesk/internal/platform/icons"
	"github.com/louisbranch/cashdesk/internal/platform/markup"
	"github.com/louisbranch/cashdesk/internal/services/admin/routepath"
)

// DashboardStat is one counter on the dashboard.
type DashboardStat struct {
	Label string
	Value string
	URL   string
	Icon  icons.ID
}

// DashboardView provides data for the dashboard content fragment.
type DashboardView struct {
	Stats []DashboardStat
	// Warning is shown when some counters could not be loaded.
	Warning string
	// Recent lists the latest recorded decisions.
	Recent templ.Component
}

// DashboardPage renders the dashboard shell; counters load lazily.
func DashboardPage(loc Localizer) templ.Component {
	return markup.Join(
		Heading(PageHeading{Title: T(loc, "title.dashboard")}),
		LazyLoad(routepath.DashboardContent, T(loc, "dashboard.loading")),
	)
}

// DashboardContent renders the loaded counters and recent decisions.
func DashboardContent(view DashboardView) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Open("div", "id", "dashboard-content", "class", "flex flex-col gap-6")
		if view.Warning != "" {
			w.Component(ctx, Alert("warning", view.Warning))
		}
		w.Open("div", "class", "stats stats-vertical w-full shadow-sm lg:stats-horizontal")
		for _, stat := range view.Stats {
			w.Component(ctx, StatCard(stat.Label, stat.Value, stat.URL, stat.Icon))
		}
		w.Close("div")
		w.Component(ctx, view.Recent)
		w.Close("div")
	})
}

package templates

import (
	"context"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/cashdesk/internal/platform/icons"
	"github.com/louisbranch/cashdesk/internal/platform/markup"
)

// PageHeading holds header metadata for pages.
type PageHeading struct {
	// Title is the page heading.
	Title string
	// Breadcrumbs renders a path trail for the page.
	Breadcrumbs []Breadcrumb
	// ActionURL renders a CTA button when set.
	ActionURL string
	// ActionLabel is the CTA button label.
	ActionLabel string
}

// Breadcrumb represents a single breadcrumb item.
type Breadcrumb struct {
	Label string
	URL   string
}

// DetailField is one label/value pair of a detail list.
type DetailField struct {
	Label string
	Value string
}

// AppendQueryParam appends a single query parameter to a URL.
func AppendQueryParam(baseURL string, key string, value string) string {
	encodedKey := url.QueryEscape(key)
	encodedValue := url.QueryEscape(value)
	if strings.Contains(baseURL, "?") {
		return baseURL + "&" + encodedKey + "=" + encodedValue
	}
	return baseURL + "?" + encodedKey + "=" + encodedValue
}

// Heading renders a page heading with optional breadcrumbs and action.
func Heading(heading PageHeading) templ.Component {
	return markup.Func(func(_ context.Context, w *markup.Writer) {
		w.Open("header", "class", "flex flex-wrap items-end justify-between gap-4")
		w.Open("div")
		if len(heading.Breadcrumbs) > 0 {
			w.Open("div", "class", "breadcrumbs text-sm")
			w.Open("ul")
			for _, crumb := range heading.Breadcrumbs {
				w.Open("li")
				if crumb.URL != "" {
					w.Element("a", crumb.Label, "href", crumb.URL)
				} else {
					w.Text(crumb.Label)
				}
				w.Close("li")
			}
			w.Close("ul")
			w.Close("div")
		}
		w.Element("h1", heading.Title, "class", "text-2xl font-semibold")
		w.Close("div")
		if heading.ActionURL != "" && heading.ActionLabel != "" {
			w.Element("a", heading.ActionLabel, "href", heading.ActionURL, "class", "btn btn-primary btn-sm")
		}
		w.Close("header")
	})
}

// Icon renders a Lucide icon placeholder.
func Icon(id icons.ID) templ.Component {
	return markup.Func(func(_ context.Context, w *markup.Writer) {
		w.Open("i", "data-lucide", icons.LucideNameOrDefault(id), "class", "size-4", "aria-hidden", "true")
		w.Close("i")
	})
}

// LoadingSpinner renders the shared loading ring.
func LoadingSpinner() templ.Component {
	return markup.Func(func(_ context.Context, w *markup.Writer) {
		w.Raw(`<span class="loading loading-ring loading-md" aria-hidden="true"></span>`)
	})
}

// LazyLoad renders a placeholder that replaces itself with url on load.
func LazyLoad(url string, message string) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Open("div",
			"hx-get", url,
			"hx-trigger", "load",
			"hx-swap", "outerHTML",
			"class", "flex justify-center py-8",
			"aria-busy", "true",
		)
		w.Component(ctx, LoadingSpinner())
		w.Element("span", message, "class", "sr-only")
		w.Close("div")
	})
}

// Alert renders a DaisyUI alert. Tone is success, info, warning or error.
func Alert(tone string, text string) templ.Component {
	return markup.Func(func(_ context.Context, w *markup.Writer) {
		w.Open("div", "role", "alert", "class", markup.Classes("alert", alertTone(tone)))
		w.Element("span", text)
		w.Close("div")
	})
}

// NoticeBanner renders the pending flash notice, if any.
func NoticeBanner(notice *Notice) templ.Component {
	if notice == nil || strings.TrimSpace(notice.Text) == "" {
		return nil
	}
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Open("div", "id", "flash", "data-tone", notice.Tone)
		w.Component(ctx, Alert(notice.Tone, notice.Text))
		w.Close("div")
	})
}

// FragmentError replaces a failed fragment with an alert and a retry
// control that re-issues the same request into the same target id.
func FragmentError(targetID string, retryURL string, text string, retryLabel string) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Open("div", "id", targetID, "data-error", "true")
		w.Open("div", "role", "alert", "class", "alert alert-error")
		w.Element("span", text)
		w.Open("button",
			"type", "button",
			"class", "btn btn-sm",
			"hx-get", retryURL,
			"hx-target", "#"+targetID,
			"hx-select", "#"+targetID,
			"hx-swap", "outerHTML",
		)
		w.Component(ctx, Icon(icons.Retry))
		w.Text(retryLabel)
		w.Close("button")
		w.Close("div")
		w.Close("div")
	})
}

// StatusBadge renders a colored status pill.
func StatusBadge(tone string, label string) templ.Component {
	return markup.Func(func(_ context.Context, w *markup.Writer) {
		w.Element("span", label, "class", markup.Classes("badge badge-sm", badgeTone(tone)))
	})
}

// StatCard renders one dashboard counter linking to its list.
func StatCard(label string, value string, href string, icon icons.ID) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Open("a", "href", href, "class", "stat bg-base-100 rounded-box shadow-sm", "data-stat", string(icon))
		w.Open("div", "class", "stat-figure text-primary")
		w.Component(ctx, Icon(icon))
		w.Close("div")
		w.Element("div", label, "class", "stat-title")
		w.Element("div", value, "class", "stat-value")
		w.Close("a")
	})
}

// DetailList renders label/value pairs; blank values show emptyValue.
func DetailList(fields []DetailField, emptyValue string) templ.Component {
	return markup.Func(func(_ context.Context, w *markup.Writer) {
		w.Open("dl", "class", "grid grid-cols-1 gap-x-6 gap-y-2 sm:grid-cols-2")
		for _, field := range fields {
			w.Open("div")
			w.Element("dt", field.Label, "class", "text-sm text-base-content/60")
			value := field.Value
			if strings.TrimSpace(value) == "" {
				value = emptyValue
			}
			w.Element("dd", value, "class", "font-medium break-all")
			w.Close("div")
		}
		w.Close("dl")
	})
}

// Card wraps body in a titled DaisyUI card.
func Card(title string, body templ.Component) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Open("section", "class", "card bg-base-100 shadow-sm")
		w.Open("div", "class", "card-body gap-4")
		if title != "" {
			w.Element("h2", title, "class", "card-title")
		}
		w.Component(ctx, body)
		w.Close("div")
		w.Close("section")
	})
}

// ActionButton is a small button that opens a dialog through htmx, or a
// plain link when Navigate is set. Clicks stop propagating so an
// interactive table row does not also fire.
type ActionButton struct {
	Label    string
	URL      string
	Tone     string
	Icon     icons.ID
	Navigate bool
}

// ActionButtons renders a row of ActionButton controls.
func ActionButtons(buttons ...ActionButton) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Open("div", "class", "flex justify-end gap-1")
		for _, button := range buttons {
			if button.Navigate {
				w.Open("a",
					"href", button.URL,
					"class", markup.Classes("btn btn-xs", buttonTone(button.Tone)),
					"onclick", "event.stopPropagation()",
				)
				if button.Icon != "" {
					w.Component(ctx, Icon(button.Icon))
				}
				w.Text(button.Label)
				w.Close("a")
				continue
			}
			w.Open("button",
				"type", "button",
				"class", markup.Classes("btn btn-xs", buttonTone(button.Tone)),
				"hx-get", button.URL,
				"hx-target", "body",
				"hx-swap", "beforeend",
				"onclick", "event.stopPropagation()",
			)
			if button.Icon != "" {
				w.Component(ctx, Icon(button.Icon))
			}
			w.Text(button.Label)
			w.Close("button")
		}
		w.Close("div")
	})
}

// Dialog renders an open modal appended to the body. Closing removes it
// from the document.
func Dialog(id string, title string, body templ.Component, closeLabel string) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Open("dialog", "id", id, "class", "modal modal-open", "open", "open")
		w.Open("div", "class", "modal-box flex flex-col gap-4")
		w.Element("h3", title, "class", "text-lg font-bold")
		w.Component(ctx, body)
		w.Close("div")
		w.Open("form", "method", "dialog", "class", "modal-backdrop")
		w.Element("button", closeLabel, "type", "button", "onclick", "this.closest('dialog').remove()")
		w.Close("form")
		w.Close("dialog")
	})
}

// ConfirmView describes a confirmation dialog that posts a decision.
type ConfirmView struct {
	ID           string
	Title        string
	Message      string
	Fields       []DetailField
	EmptyValue   string
	ActionURL    string
	Decision     string
	Tone         string
	ConfirmLabel string
	CancelLabel  string
}

// ConfirmDialog renders a modal whose confirm button posts the decision
// and whose cancel button removes the dialog.
func ConfirmDialog(view ConfirmView) templ.Component {
	body := markup.Func(func(ctx context.Context, w *markup.Writer) {
		if view.Message != "" {
			w.Element("p", view.Message)
		}
		if len(view.Fields) > 0 {
			w.Component(ctx, DetailList(view.Fields, view.EmptyValue))
		}
		w.Open("form", "method", "post", "action", view.ActionURL, "class", "modal-action")
		if view.Decision != "" {
			w.Open("input", "type", "hidden", "name", "decision", "value", view.Decision)
		}
		w.Element("button", view.CancelLabel, "type", "button", "class", "btn", "onclick", "this.closest('dialog').remove()")
		w.Element("button", view.ConfirmLabel, "type", "submit", "class", markup.Classes("btn", buttonTone(view.Tone)), "data-confirm", "true")
		w.Close("form")
	})
	return Dialog(view.ID, view.Title, body, view.CancelLabel)
}

// FormField describes one labelled input.
type FormField struct {
	Name        string
	Label       string
	Type        string
	Value       string
	Placeholder string
	Required    bool
	Step        string
}

// Form renders a POST form with fields and a submit button.
func Form(action string, fields []FormField, submitLabel string) templ.Component {
	return markup.Func(func(_ context.Context, w *markup.Writer) {
		w.Open("form", "method", "post", "action", action, "class", "flex flex-col gap-3")
		for _, field := range fields {
			w.Open("label", "class", "form-control w-full")
			w.Open("div", "class", "label")
			w.Element("span", field.Label, "class", "label-text")
			w.Close("div")
			fieldType := field.Type
			if fieldType == "" {
				fieldType = "text"
			}
			required := ""
			if field.Required {
				required = "required"
			}
			if fieldType == "textarea" {
				w.Open("textarea", "name", field.Name, "placeholder", field.Placeholder, "class", "textarea textarea-bordered", "required", required)
				w.Text(field.Value)
				w.Close("textarea")
			} else {
				w.Open("input",
					"type", fieldType,
					"name", field.Name,
					"value", field.Value,
					"placeholder", field.Placeholder,
					"step", field.Step,
					"class", "input input-bordered w-full",
					"required", required,
				)
			}
			w.Close("label")
		}
		w.Element("button", submitLabel, "type", "submit", "class", "btn btn-primary self-start")
		w.Close("form")
	})
}

func alertTone(tone string) string {
	switch tone {
	case "success", "info", "warning", "error":
		return "alert-" + tone
	default:
		return ""
	}
}

func badgeTone(tone string) string {
	switch tone {
	case "success", "info", "warning", "error", "neutral":
		return "badge-" + tone
	default:
		return "badge-ghost"
	}
}

func buttonTone(tone string) string {
	switch tone {
	case "success", "error", "warning", "primary":
		return "btn-" + tone
	default:
		return "btn-ghost"
	}
}

// ExternalLink opens url in a new tab without triggering a row click.
func ExternalLink(url string, label string) templ.Component {
	return markup.Func(func(_ context.Context, w *markup.Writer) {
		w.Element("a", label,
			"href", url,
			"target", "_blank",
			"rel", "noopener noreferrer",
			"class", "link link-primary",
			"onclick", "event.stopPropagation()",
		)
	})
}

package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/cashdesk/internal/platform/markup"
)

// ReviewDecision is one button of a review dialog.
type ReviewDecision struct {
	Decision string
	Label    string
	Tone     string
}

// ReviewView describes a dialog offering every decision for one request.
type ReviewView struct {
	ID          string
	Title       string
	Fields      []DetailField
	EmptyValue  string
	ActionURL   string
	Decisions   []ReviewDecision
	CancelLabel string
}

// ReviewDialog renders the request details with one form per decision.
func ReviewDialog(view ReviewView) templ.Component {
	body := markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Component(ctx, DetailList(view.Fields, view.EmptyValue))
		w.Open("div", "class", "modal-action")
		w.Element("button", view.CancelLabel, "type", "button", "class", "btn", "onclick", "this.closest('dialog').remove()")
		for _, decision := range view.Decisions {
			w.Open("form", "method", "post", "action", view.ActionURL)
			w.Open("input", "type", "hidden", "name", "decision", "value", decision.Decision)
			w.Element("button", decision.Label, "type", "submit", "class", markup.Classes("btn", buttonTone(decision.Tone)), "data-decision", decision.Decision)
			w.Close("form")
		}
		w.Close("div")
	})
	return Dialog(view.ID, view.Title, body, view.CancelLabel)
}

package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/cashdesk/internal/platform/icons"
	"github.com/louisbranch/cashdesk/internal/platform/markup"
	"github.com/louisbranch/cashdesk/internal/services/admin/storage"
)

// ListPage renders a heading followed by the page sections.
func ListPage(heading PageHeading, sections ...templ.Component) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Component(ctx, Heading(heading))
		for _, section := range sections {
			w.Component(ctx, section)
		}
	})
}

// WithdrawalDetailView provides data for the withdrawal detail page.
type WithdrawalDetailView struct {
	Heading    PageHeading
	Fields     []DetailField
	EmptyValue string
	Actions    []ActionButton
	// Message replaces the details when the withdrawal could not be loaded.
	Message string
}

// WithdrawalDetail renders a withdrawal with its review and delete actions.
func WithdrawalDetail(view WithdrawalDetailView, loc Localizer) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Component(ctx, Heading(view.Heading))
		if view.Message != "" {
			w.Component(ctx, Alert("error", view.Message))
			return
		}
		w.Component(ctx, Card(T(loc, "withdrawal.details"), markup.Join(
			DetailList(view.Fields, view.EmptyValue),
			ActionButtons(view.Actions...),
		)))
	})
}

// UserDetailView provides data for the user detail page.
type UserDetailView struct {
	Heading      PageHeading
	Fields       []DetailField
	EmptyValue   string
	Transactions templ.Component
	ResetAction  string
	Message      string
}

// UserDetail renders a user profile, transactions and password reset.
func UserDetail(view UserDetailView, loc Localizer) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Component(ctx, Heading(view.Heading))
		if view.Message != "" {
			w.Component(ctx, Alert("error", view.Message))
			return
		}
		w.Component(ctx, Card(T(loc, "user.profile"), DetailList(view.Fields, view.EmptyValue)))
		w.Component(ctx, view.Transactions)
		w.Component(ctx, Card(T(loc, "user.reset_password"), Form(view.ResetAction, []FormField{
			{Name: "new_password", Label: T(loc, "user.new_password"), Type: "password", Required: true},
		}, T(loc, "action.reset_password"))))
	})
}

// CoinsView provides data for the coin values page.
type CoinsView struct {
	Heading     PageHeading
	ValueForm   []FormField
	ValueAction string
	// Filter inputs for the history tables, submitted with GET.
	Coin        string
	UserID      string
	History     templ.Component
	Commissions templ.Component
	DepositForm []FormField
	DepositURL  string
}

// CoinsPage renders coin value management and manual deposits.
func CoinsPage(view CoinsView, loc Localizer) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Component(ctx, Heading(view.Heading))
		w.Open("div", "class", "grid grid-cols-1 gap-6 xl:grid-cols-2")
		w.Component(ctx, Card(T(loc, "coins.set_value"), Form(view.ValueAction, view.ValueForm, T(loc, "action.save"))))
		w.Component(ctx, Card(T(loc, "coins.manual_deposit"), Form(view.DepositURL, view.DepositForm, T(loc, "action.create_deposit"))))
		w.Close("div")

		w.Open("form", "method", "get", "class", "flex flex-wrap items-end gap-3", "data-filter", "coins")
		filterInput(w, "coin", T(loc, "coins.coin"), view.Coin)
		filterInput(w, "user_id", T(loc, "coins.user_id"), view.UserID)
		w.Element("button", T(loc, "action.load_history"), "type", "submit", "class", "btn btn-sm")
		w.Close("form")

		if view.History != nil {
			w.Component(ctx, view.History)
		} else {
			w.Component(ctx, Alert("info", T(loc, "coins.history_prompt")))
		}
		if view.Commissions != nil {
			w.Component(ctx, view.Commissions)
		} else {
			w.Component(ctx, Alert("info", T(loc, "coins.commissions_prompt")))
		}
	})
}

// BankDetailFormView provides data for the create and edit forms.
type BankDetailFormView struct {
	Heading PageHeading
	Action  string
	Fields  []FormField
	Submit  string
	Message string
}

// BankDetailForm renders the bank detail form.
func BankDetailForm(view BankDetailFormView) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Component(ctx, Heading(view.Heading))
		if view.Message != "" {
			w.Component(ctx, Alert("error", view.Message))
		}
		w.Component(ctx, Card("", Form(view.Action, view.Fields, view.Submit)))
	})
}

// JournalView provides data for the review journal page.
type JournalView struct {
	Heading PageHeading
	Filter  string
	OrderBy string
	Table   templ.Component
}

// JournalPage renders the filter form and the journal table.
func JournalPage(view JournalView, loc Localizer) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Component(ctx, Heading(view.Heading))
		w.Open("form", "method", "get", "class", "flex flex-wrap items-end gap-3", "data-filter", "journal")
		w.Open("label", "class", "form-control grow")
		w.Open("div", "class", "label")
		w.Element("span", T(loc, "journal.filter"), "class", "label-text")
		w.Close("div")
		w.Open("input",
			"type", "text",
			"name", "filter",
			"value", view.Filter,
			"placeholder", `kind = "deposit" AND decision = "approve"`,
			"class", "input input-bordered input-sm w-full font-mono",
		)
		w.Close("label")
		journalOrderSelect(w, loc, view.OrderBy)
		w.Open("button", "type", "submit", "class", "btn btn-sm")
		w.Component(ctx, Icon(icons.Journal))
		w.Text(T(loc, "action.apply_filter"))
		w.Close("button")
		w.Close("form")
		w.Component(ctx, view.Table)
	})
}

func journalOrderSelect(w *markup.Writer, loc Localizer, selected string) {
	w.Open("label", "class", "form-control")
	w.Open("div", "class", "label")
	w.Element("span", T(loc, "journal.order"), "class", "label-text")
	w.Close("div")
	w.Open("select", "name", "order_by", "class", "select select-bordered select-sm")
	options := []struct{ value, key string }{
		{storage.OrderNewestFirst, "journal.order_newest"},
		{storage.OrderOldestFirst, "journal.order_oldest"},
	}
	for _, option := range options {
		if option.value == selected {
			w.Element("option", T(loc, option.key), "value", option.value, "selected", "selected")
			continue
		}
		w.Element("option", T(loc, option.key), "value", option.value)
	}
	w.Close("select")
	w.Close("label")
}

func filterInput(w *markup.Writer, name string, label string, value string) {
	w.Open("label", "class", "form-control")
	w.Open("div", "class", "label")
	w.Element("span", label, "class", "label-text")
	w.Close("div")
	w.Open("input", "type", "text", "name", name, "value", value, "class", "input input-bordered input-sm")
	w.Close("label")
}

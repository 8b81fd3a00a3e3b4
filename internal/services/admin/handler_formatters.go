package admin

import (
	"context"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/cashdesk/internal/datatable"
	"github.com/louisbranch/cashdesk/internal/platform/markup"
	"github.com/louisbranch/cashdesk/internal/services/admin/templates"
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// amountScale is the number of decimals shown for money amounts.
	amountScale = 2
	// coinValueScale is the number of decimals shown for coin values.
	coinValueScale = 6
	// displayTimeLayout formats timestamps in tables and detail lists.
	displayTimeLayout = "2006-01-02 15:04"
)

// backendTimeLayouts lists the timestamp shapes the backend returns.
var backendTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// formatMoney renders value as a localized dollar amount. Values that are
// not numbers are returned as given.
func formatMoney(loc *message.Printer, value any, scale int) (string, bool) {
	raw, ok := datatable.Stringify(value)
	if !ok {
		return "", false
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return raw, true
	}
	formatted := loc.Sprint(number.Decimal(amount.Round(int32(scale)).InexactFloat64(), number.Scale(scale)))
	return loc.Sprintf("format.usd", formatted), true
}

// formatTime renders a backend timestamp in UTC. Unparseable values are
// returned as given.
func formatTime(value any) (string, bool) {
	raw, ok := datatable.Stringify(value)
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	for _, layout := range backendTimeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC().Format(displayTimeLayout), true
		}
	}
	return raw, true
}

// textOrEmpty adapts a formatter into a detail field format func.
func textOrEmpty(format func(value any) (string, bool)) func(value any) string {
	return func(value any) string {
		text, _ := format(value)
		return text
	}
}

func moneyFormat(loc *message.Printer, scale int) func(value any) (string, bool) {
	return func(value any) (string, bool) {
		return formatMoney(loc, value, scale)
	}
}

func moneyColumn(loc *message.Printer, key string, labelKey string) datatable.Column {
	return datatable.Column{
		Key:      key,
		Label:    loc.Sprintf(labelKey),
		Align:    datatable.AlignRight,
		MinWidth: 100,
		Render:   formattedCell(moneyFormat(loc, amountScale)),
	}
}

func coinValueColumn(loc *message.Printer, key string, labelKey string) datatable.Column {
	return datatable.Column{
		Key:      key,
		Label:    loc.Sprintf(labelKey),
		Align:    datatable.AlignRight,
		MinWidth: 120,
		Render:   formattedCell(moneyFormat(loc, coinValueScale)),
	}
}

func timeColumn(loc *message.Printer, key string, labelKey string) datatable.Column {
	return datatable.Column{
		Key:      key,
		Label:    loc.Sprintf(labelKey),
		MinWidth: 150,
		Render:   formattedCell(formatTime),
	}
}

func textColumn(loc *message.Printer, key string, labelKey string, minWidth int) datatable.Column {
	return datatable.Column{Key: key, Label: loc.Sprintf(labelKey), MinWidth: minWidth}
}

// formattedCell renders the formatted value, or the empty value when the
// cell is missing.
func formattedCell(format func(value any) (string, bool)) datatable.RenderFunc {
	return func(value any, _ datatable.Row) templ.Component {
		text, ok := format(value)
		if !ok {
			text = datatable.DefaultEmptyValue
		}
		return markup.Text(text)
	}
}

// fileColumn links an uploaded file path to the backend file host.
func (h *Handler) fileColumn(loc *message.Printer, key string, labelKey string) datatable.Column {
	return datatable.Column{
		Key:      key,
		Label:    loc.Sprintf(labelKey),
		MinWidth: 100,
		Render: func(value any, _ datatable.Row) templ.Component {
			path, ok := datatable.Stringify(value)
			if !ok || strings.TrimSpace(path) == "" {
				return markup.Text(loc.Sprintf("label.no_file"))
			}
			return templates.ExternalLink(h.fileURL(path), loc.Sprintf("label.view"))
		},
	}
}

func (h *Handler) fileURL(path string) string {
	path = strings.TrimLeft(strings.TrimSpace(path), "/")
	if h.filesURL == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return h.filesURL + "/" + path
}

// activeColumn renders a bank detail activation flag as a badge.
func activeColumn(loc *message.Printer, key string, labelKey string) datatable.Column {
	return datatable.Column{
		Key:      key,
		Label:    loc.Sprintf(labelKey),
		Align:    datatable.AlignCenter,
		MinWidth: 90,
		Render: func(value any, _ datatable.Row) templ.Component {
			if active, _ := value.(bool); active {
				return templates.StatusBadge("success", loc.Sprintf("label.active"))
			}
			return templates.StatusBadge("neutral", loc.Sprintf("label.inactive"))
		},
	}
}

// groupColumn renders a transaction day bucket as a badge.
func groupColumn(loc *message.Printer, key string, labelKey string) datatable.Column {
	return datatable.Column{
		Key:      key,
		Label:    loc.Sprintf(labelKey),
		MinWidth: 100,
		Render: func(value any, _ datatable.Row) templ.Component {
			group, _ := value.(string)
			switch group {
			case "today":
				return templates.StatusBadge("success", loc.Sprintf("group.today"))
			case "yesterday":
				return templates.StatusBadge("info", loc.Sprintf("group.yesterday"))
			case "older":
				return templates.StatusBadge("neutral", loc.Sprintf("group.older"))
			default:
				return markup.Text(datatable.DefaultEmptyValue)
			}
		},
	}
}

// transactionAmountColumn colors amounts by direction.
func transactionAmountColumn(loc *message.Printer, key string, labelKey string) datatable.Column {
	return datatable.Column{
		Key:      key,
		Label:    loc.Sprintf(labelKey),
		Align:    datatable.AlignRight,
		MinWidth: 100,
		Render: func(value any, row datatable.Row) templ.Component {
			text, ok := datatable.Stringify(value)
			if !ok {
				text, ok = formatMoney(loc, row.Value("amount"), amountScale)
			}
			if !ok {
				return markup.Text(datatable.DefaultEmptyValue)
			}
			class := "text-error"
			if row.String("type") == "income" {
				class = "text-success"
			}
			return markup.Func(func(_ context.Context, w *markup.Writer) {
				w.Element("span", text, "class", class)
			})
		},
	}
}

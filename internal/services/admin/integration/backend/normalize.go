package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/louisbranch/cashdesk/internal/datatable"
	"github.com/tidwall/gjson"
)

// transactionGroups lists the buckets some backends use for user
// transactions, in display order.
var transactionGroups = []string{"today", "yesterday", "older"}

// GroupField holds the bucket a flattened transaction came from.
const GroupField = "group"

// normalizeRows accepts a bare JSON array or an object holding the array
// under envelope. Any other shape yields an empty slice and
// ErrUnexpectedEnvelope.
func normalizeRows(body []byte, envelope string) ([]datatable.Row, error) {
	if !gjson.ValidBytes(body) {
		return []datatable.Row{}, fmt.Errorf("%w: invalid json", ErrUnexpectedEnvelope)
	}
	parsed := gjson.ParseBytes(body)
	if parsed.IsArray() {
		return rowsFromArray(parsed)
	}
	if parsed.IsObject() && envelope != "" {
		if list := parsed.Get(gjson.Escape(envelope)); list.IsArray() {
			return rowsFromArray(list)
		}
	}
	return []datatable.Row{}, fmt.Errorf("%w: want array or %q", ErrUnexpectedEnvelope, envelope)
}

// normalizeTransactions handles the plain list shapes plus transactions
// grouped into today, yesterday and older buckets, which are flattened in
// that order with the bucket name stored under GroupField.
func normalizeTransactions(body []byte) ([]datatable.Row, error) {
	if !gjson.ValidBytes(body) {
		return []datatable.Row{}, fmt.Errorf("%w: invalid json", ErrUnexpectedEnvelope)
	}
	parsed := gjson.ParseBytes(body)
	grouped := parsed
	if parsed.IsObject() {
		if inner := parsed.Get("transactions"); inner.IsObject() {
			grouped = inner
		}
	}
	if grouped.IsObject() && hasAnyGroup(grouped) {
		rows := []datatable.Row{}
		for _, group := range transactionGroups {
			list := grouped.Get(group)
			if !list.IsArray() {
				continue
			}
			groupRows, err := rowsFromArray(list)
			if err != nil {
				return []datatable.Row{}, err
			}
			for _, row := range groupRows {
				row[GroupField] = group
			}
			rows = append(rows, groupRows...)
		}
		return rows, nil
	}
	return normalizeRows(body, "transactions")
}

func hasAnyGroup(value gjson.Result) bool {
	for _, group := range transactionGroups {
		if value.Get(group).Exists() {
			return true
		}
	}
	return false
}

// normalizeObject returns the object stored under envelope, or the body
// itself when it is an object without that key.
func normalizeObject(body []byte, envelope string) (datatable.Row, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid json", ErrUnexpectedEnvelope)
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("%w: want object", ErrUnexpectedEnvelope)
	}
	if inner := parsed.Get(gjson.Escape(envelope)); envelope != "" && inner.IsObject() {
		return decodeRow(inner.Raw)
	}
	return decodeRow(parsed.Raw)
}

func rowsFromArray(list gjson.Result) ([]datatable.Row, error) {
	items := list.Array()
	rows := make([]datatable.Row, 0, len(items))
	for _, item := range items {
		if !item.IsObject() {
			continue
		}
		row, err := decodeRow(item.Raw)
		if err != nil {
			return []datatable.Row{}, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// decodeRow keeps numbers as json.Number with a canonical spelling, so
// 1.50 and 1.5e0 both display and search as 1.5.
func decodeRow(raw string) (datatable.Row, error) {
	decoder := json.NewDecoder(bytes.NewReader([]byte(raw)))
	decoder.UseNumber()
	row := datatable.Row{}
	if err := decoder.Decode(&row); err != nil {
		return nil, fmt.Errorf("decode row: %w", err)
	}
	for key, value := range row {
		row[key] = canonicalNumbers(value)
	}
	return row, nil
}

func canonicalNumbers(value any) any {
	switch v := value.(type) {
	case json.Number:
		return canonicalNumber(v)
	case map[string]any:
		for key, item := range v {
			v[key] = canonicalNumbers(item)
		}
	case []any:
		for i, item := range v {
			v[i] = canonicalNumbers(item)
		}
	}
	return value
}

// canonicalNumber spells n the way ECMAScript Number.prototype.toString
// does: the shortest round-trip digits, positional notation between 1e-7
// and 1e21, and exponent notation without padding outside it. Integer
// literals keep every digit.
func canonicalNumber(n json.Number) json.Number {
	raw := n.String()
	if !strings.ContainsAny(raw, ".eE") {
		if raw == "-0" {
			return "0"
		}
		return n
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) {
		return n
	}
	if f == 0 {
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		sign, digits := exponent[:1], strings.TrimLeft(exponent[1:], "0")
		return json.Number(mantissa + "e" + sign + digits)
	}
	return json.Number(strconv.FormatFloat(f, 'f', -1, 64))
}

// bankDetailFields maps each canonical camelCase key to its snake_case
// spelling.
var bankDetailFields = []struct {
	canonical string
	snake     string
}{
	{"id", "id"},
	{"bankName", "bank_name"},
	{"accountHolderName", "account_holder_name"},
	{"accountNumber", "account_number"},
	{"branchName", "branch_name"},
	{"swiftCode", "swift_code"},
	{"isActive", "is_active"},
	{"description", "description"},
	{"adminId", "admin_id"},
	{"createdAt", "created_at"},
}

// foldBankDetail rewrites a bank detail row to canonical camelCase keys.
// A camelCase value wins over its snake_case twin; isActive defaults to
// true when neither is present.
func foldBankDetail(row datatable.Row) datatable.Row {
	folded := datatable.Row{}
	for _, field := range bankDetailFields {
		if value, ok := row[field.canonical]; ok && value != nil {
			folded[field.canonical] = value
			continue
		}
		if value, ok := row[field.snake]; ok && value != nil {
			folded[field.canonical] = value
		}
	}
	if _, ok := folded["isActive"]; !ok {
		folded["isActive"] = true
	}
	return folded
}

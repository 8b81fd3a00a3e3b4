package datatable

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Row is one opaque record addressed by column keys.
type Row map[string]any

// Value returns the raw field value, or nil when the field is absent.
func (r Row) Value(key string) any {
	if r == nil {
		return nil
	}
	return r[key]
}

// String returns the display form of a field, or "" when absent or nil.
func (r Row) String(key string) string {
	value, ok := Stringify(r.Value(key))
	if !ok {
		return ""
	}
	return value
}

// Stringify returns the default display form of a field value. The bool is
// false for nil values, which render through the table's empty-value policy.
func Stringify(value any) (string, bool) {
	if value == nil {
		return "", false
	}
	if text, ok := searchableString(value); ok {
		return text, true
	}
	switch v := value.(type) {
	case bool:
		return strconv.FormatBool(v), true
	case fmt.Stringer:
		return v.String(), true
	case map[string]any, []any, Row:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v), true
		}
		return string(encoded), true
	default:
		return fmt.Sprint(v), true
	}
}

// searchableString returns the string form of strings and numbers only.
func searchableString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

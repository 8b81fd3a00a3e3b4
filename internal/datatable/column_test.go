package datatable

import (
	"encoding/json"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	if err := Validate([]Column{{Key: "id"}, {Key: "name"}}); err != nil {
		t.Fatalf("Validate(valid) = %v", err)
	}
	if err := Validate(nil); err != nil {
		t.Fatalf("Validate(nil) = %v", err)
	}
	if err := Validate([]Column{{Key: "id"}, {Key: "id"}}); err == nil {
		t.Fatal("expected duplicate key error")
	}
	if err := Validate([]Column{{Key: " "}}); err == nil {
		t.Fatal("expected blank key error")
	}
}

func TestColumnDefaults(t *testing.T) {
	t.Parallel()

	if got := (Column{}).align(); got != AlignLeft {
		t.Fatalf("align = %q, want left", got)
	}
	if got := (Column{Align: "middle"}).align(); got != AlignLeft {
		t.Fatalf("align = %q, want left", got)
	}
	if got := (Column{}).minWidth(); got != 100 {
		t.Fatalf("minWidth = %d, want 100", got)
	}
	if got := (Column{MinWidth: 180}).minWidth(); got != 180 {
		t.Fatalf("minWidth = %d, want 180", got)
	}
}

func TestStringify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  any
		want   string
		wantOK bool
	}{
		{name: "nil", value: nil},
		{name: "string", value: "abc", want: "abc", wantOK: true},
		{name: "int", value: 42, want: "42", wantOK: true},
		{name: "float", value: 1.5, want: "1.5", wantOK: true},
		{name: "whole float", value: float64(100), want: "100", wantOK: true},
		{name: "json number", value: json.Number("12.30"), want: "12.30", wantOK: true},
		{name: "bool", value: true, want: "true", wantOK: true},
		{name: "stringer", value: time.Second, want: "1s", wantOK: true},
		{name: "map", value: map[string]any{"a": 1}, want: `{"a":1}`, wantOK: true},
		{name: "slice", value: []any{"x", 2}, want: `["x",2]`, wantOK: true},
	}
	for _, tc := range tests {
		got, ok := Stringify(tc.value)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("%s: Stringify = (%q, %v), want (%q, %v)", tc.name, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestRowString(t *testing.T) {
	t.Parallel()

	var nilRow Row
	if got := nilRow.String("id"); got != "" {
		t.Fatalf("nil row String = %q", got)
	}
	row := Row{"id": 7}
	if got := row.String("id"); got != "7" {
		t.Fatalf("String(id) = %q, want 7", got)
	}
}

package sqlite

import (
	"reflect"
	"testing"
)

func TestParseJournalFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		filter     string
		wantClause string
		wantParams []any
	}{
		{name: "empty", filter: "  "},
		{
			name:       "equality",
			filter:     `subject_id = "dep-1"`,
			wantClause: "subject_id = ?",
			wantParams: []any{"dep-1"},
		},
		{
			name:       "and",
			filter:     `kind = "kyc" AND decision != "approve"`,
			wantClause: "(kind = ? AND decision != ?)",
			wantParams: []any{"kyc", "approve"},
		},
		{
			name:       "timestamp",
			filter:     `recorded_at > timestamp("2026-01-01T00:00:00Z")`,
			wantClause: "recorded_at > ?",
			wantParams: []any{int64(1767225600000)},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseJournalFilter(tc.filter)
			if err != nil {
				t.Fatalf("parseJournalFilter(%q): %v", tc.filter, err)
			}
			if got.clause != tc.wantClause {
				t.Fatalf("clause = %q, want %q", got.clause, tc.wantClause)
			}
			if len(tc.wantParams) == 0 && len(got.params) == 0 {
				return
			}
			if !reflect.DeepEqual(got.params, tc.wantParams) {
				t.Fatalf("params = %#v, want %#v", got.params, tc.wantParams)
			}
		})
	}
}

func TestParseJournalFilterRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	if _, err := parseJournalFilter(`amount = "5"`); err == nil {
		t.Fatal("expected error for unknown field")
	}
	if _, err := parseJournalFilter(`recorded_at > timestamp("yesterday")`); err == nil {
		t.Fatal("expected error for invalid timestamp")
	}
}

package sqlite

import (
	"fmt"
	"strings"
	"time"

	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// condition is a SQL WHERE fragment with positional parameters.
type condition struct {
	clause string
	params []any
}

// journalColumns maps filter identifiers to review_journal columns.
var journalColumns = map[string]string{
	"kind":        "kind",
	"subject_id":  "subject_id",
	"decision":    "decision",
	"recorded_at": "recorded_at",
}

var comparisonOps = map[string]string{
	filtering.FunctionEquals:        "=",
	filtering.FunctionNotEquals:     "!=",
	filtering.FunctionLessThan:      "<",
	filtering.FunctionLessEquals:    "<=",
	filtering.FunctionGreaterThan:   ">",
	filtering.FunctionGreaterEquals: ">=",
}

func journalDeclarations() (*filtering.Declarations, error) {
	return filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("kind", filtering.TypeString),
		filtering.DeclareIdent("subject_id", filtering.TypeString),
		filtering.DeclareIdent("decision", filtering.TypeString),
		filtering.DeclareIdent("recorded_at", filtering.TypeTimestamp),
	)
}

// parseJournalFilter translates an AIP-160 filter into a SQL condition.
// An empty filter yields an empty condition.
func parseJournalFilter(raw string) (condition, error) {
	if strings.TrimSpace(raw) == "" {
		return condition{}, nil
	}
	decls, err := journalDeclarations()
	if err != nil {
		return condition{}, fmt.Errorf("create declarations: %w", err)
	}
	filter, err := filtering.ParseFilterString(raw, decls)
	if err != nil {
		return condition{}, fmt.Errorf("parse filter: %w", err)
	}
	return translate(filter.CheckedExpr.GetExpr())
}

func translate(e *expr.Expr) (condition, error) {
	call, ok := e.GetExprKind().(*expr.Expr_CallExpr)
	if !ok {
		return condition{}, fmt.Errorf("unsupported expression type: %T", e.GetExprKind())
	}
	fn := call.CallExpr.GetFunction()
	args := call.CallExpr.GetArgs()
	switch fn {
	case filtering.FunctionAnd, filtering.FunctionOr:
		return translateLogical(fn, args)
	case filtering.FunctionNot:
		if len(args) != 1 {
			return condition{}, fmt.Errorf("NOT requires 1 argument")
		}
		inner, err := translate(args[0])
		if err != nil {
			return condition{}, err
		}
		return condition{clause: "NOT (" + inner.clause + ")", params: inner.params}, nil
	}
	if op, ok := comparisonOps[fn]; ok {
		return translateComparison(op, args)
	}
	return condition{}, fmt.Errorf("unsupported function: %s", fn)
}

func translateLogical(fn string, args []*expr.Expr) (condition, error) {
	if len(args) != 2 {
		return condition{}, fmt.Errorf("%s requires 2 arguments", fn)
	}
	left, err := translate(args[0])
	if err != nil {
		return condition{}, err
	}
	right, err := translate(args[1])
	if err != nil {
		return condition{}, err
	}
	op := "AND"
	if fn == filtering.FunctionOr {
		op = "OR"
	}
	return condition{
		clause: fmt.Sprintf("(%s %s %s)", left.clause, op, right.clause),
		params: append(left.params, right.params...),
	}, nil
}

func translateComparison(op string, args []*expr.Expr) (condition, error) {
	if len(args) != 2 {
		return condition{}, fmt.Errorf("comparison requires 2 arguments")
	}
	ident, ok := args[0].GetExprKind().(*expr.Expr_IdentExpr)
	if !ok {
		return condition{}, fmt.Errorf("expected identifier, got %T", args[0].GetExprKind())
	}
	column, ok := journalColumns[ident.IdentExpr.GetName()]
	if !ok {
		return condition{}, fmt.Errorf("unknown field: %s", ident.IdentExpr.GetName())
	}
	value, err := constantValue(args[1])
	if err != nil {
		return condition{}, err
	}
	if text, ok := value.(string); ok && column == "recorded_at" {
		value, err = parseMillis(text)
		if err != nil {
			return condition{}, err
		}
	}
	return condition{
		clause: fmt.Sprintf("%s %s ?", column, op),
		params: []any{value},
	}, nil
}

func constantValue(e *expr.Expr) (any, error) {
	switch kind := e.GetExprKind().(type) {
	case *expr.Expr_ConstExpr:
		switch c := kind.ConstExpr.GetConstantKind().(type) {
		case *expr.Constant_StringValue:
			return c.StringValue, nil
		case *expr.Constant_Int64Value:
			return c.Int64Value, nil
		default:
			return nil, fmt.Errorf("unsupported constant type: %T", c)
		}
	case *expr.Expr_CallExpr:
		if kind.CallExpr.GetFunction() == filtering.FunctionTimestamp && len(kind.CallExpr.GetArgs()) == 1 {
			return timestampMillis(kind.CallExpr.GetArgs()[0])
		}
		return nil, fmt.Errorf("unsupported function in value position: %s", kind.CallExpr.GetFunction())
	default:
		return nil, fmt.Errorf("expected constant or timestamp, got %T", kind)
	}
}

// timestampMillis converts timestamp("...") arguments to the stored unit.
func timestampMillis(e *expr.Expr) (int64, error) {
	constExpr, ok := e.GetExprKind().(*expr.Expr_ConstExpr)
	if !ok {
		return 0, fmt.Errorf("timestamp argument must be a constant string")
	}
	value, ok := constExpr.ConstExpr.GetConstantKind().(*expr.Constant_StringValue)
	if !ok {
		return 0, fmt.Errorf("timestamp argument must be a string")
	}
	return parseMillis(value.StringValue)
}

func parseMillis(value string) (int64, error) {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp format: %s", value)
	}
	return parsed.UTC().UnixMilli(), nil
}

package datatable

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// Align controls horizontal cell alignment.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// defaultMinWidth is the column min-width in pixels when none is set.
const defaultMinWidth = 100

// RenderFunc formats one cell from the raw field value and the full row.
type RenderFunc func(value any, row Row) templ.Component

// Column describes how one row field is labeled and rendered.
type Column struct {
	// Key addresses the field on each row; unique within a column list.
	Key string
	// Label is the header text.
	Label string
	// Render overrides default stringification when set.
	Render RenderFunc
	// Align defaults to left.
	Align Align
	// MinWidth is in pixels; zero means the default.
	MinWidth int
}

func (c Column) align() Align {
	switch c.Align {
	case AlignCenter, AlignRight:
		return c.Align
	default:
		return AlignLeft
	}
}

func (c Column) minWidth() int {
	if c.MinWidth <= 0 {
		return defaultMinWidth
	}
	return c.MinWidth
}

// Validate reports column lists with blank or duplicate keys.
func Validate(columns []Column) error {
	seen := make(map[string]struct{}, len(columns))
	for idx, column := range columns {
		key := strings.TrimSpace(column.Key)
		if key == "" {
			return fmt.Errorf("column %d: key is required", idx)
		}
		if _, ok := seen[key]; ok {
			return fmt.Errorf("column %d: duplicate key %q", idx, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}
